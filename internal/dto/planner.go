package dto

// ItineraryDay is one serialized day of a generated itinerary
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

// GenerateItineraryResponse is the planner endpoint's payload. Failures ride
// the same shape with Success=false and only Message set; the endpoint always
// answers 200.
type GenerateItineraryResponse struct {
	Success         bool           `json:"success"`
	Message         string         `json:"message"`
	TripID          string         `json:"trip_id,omitempty"`
	Days            []ItineraryDay `json:"days,omitempty"`
	DestinationName string         `json:"destination_name,omitempty"`
	TripTitle       string         `json:"trip_title,omitempty"`
	ImageURL        string         `json:"image_url,omitempty"`
}
