package dto

// DestinationResponse represents a destination in responses
type DestinationResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Budget      string   `json:"budget"`
	BestTime    string   `json:"best_time"`
	BadTime     string   `json:"bad_time,omitempty"`
	ImageURL    string   `json:"image_url"`
	Languages   []string `json:"languages"`
	DailyCost   float64  `json:"daily_cost"` // stay + food + transport + activities
}

// DestinationListResponse envelope
type DestinationListResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
}

// DestinationDetailResponse envelope
type DestinationDetailResponse struct {
	Success     bool                `json:"success"`
	Destination DestinationResponse `json:"destination"`
}
