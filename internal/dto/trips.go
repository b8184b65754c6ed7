package dto

// CreateTripRequest represents the payload to create a trip manually
type CreateTripRequest struct {
	DestinationID string   `json:"destination_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	StartDate     string   `json:"start_date"` // ISO 8601 format: YYYY-MM-DD or RFC3339
	EndDate       string   `json:"end_date"`   // ISO 8601 format: YYYY-MM-DD or RFC3339
	DailyBudget   float64  `json:"daily_budget"`
	Budget        string   `json:"budget"` // Low | Medium | High | literal number; used when daily_budget absent
	TravelType    string   `json:"travel_type"`
	Interests     []string `json:"interests"`
}

// TripResponse represents a trip object in responses
type TripResponse struct {
	ID            string   `json:"id"`
	DestinationID string   `json:"destination_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	DurationDays  int      `json:"duration_days"`
	DailyBudget   float64  `json:"daily_budget"`
	TotalBudget   float64  `json:"total_budget"`
	TravelType    string   `json:"travel_type"`
	Interests     []string `json:"interests"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// CreateTripResponse envelope
type CreateTripResponse struct {
	Trip TripResponse `json:"trip"`
}

// TripListResponse envelope
type TripListResponse struct {
	Trips      []TripResponse `json:"trips"`
	Pagination Pagination     `json:"pagination"`
}

// TripDetailResponse is a trip plus its ordered itinerary days
type TripDetailResponse struct {
	Trip TripResponse   `json:"trip"`
	Days []ItineraryDay `json:"days"`
}
