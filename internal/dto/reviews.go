package dto

// CreateReviewRequest represents the payload to create a review
type CreateReviewRequest struct {
	DestinationID     string `json:"destination_id"`
	TripID            string `json:"trip_id,omitempty"`
	Rating            int    `json:"rating"` // 1-5
	Title             string `json:"title"`
	Content           string `json:"content"`
	Pros              string `json:"pros"`
	Cons              string `json:"cons"`
	VisitDate         string `json:"visit_date"` // YYYY-MM-DD
	TravelType        string `json:"travel_type"`
	RecommendedBudget string `json:"recommended_budget"` // Low | Medium | High
}

// UpdateReviewRequest represents fields allowed to update a review.
// All fields are optional; only provided ones will be updated
type UpdateReviewRequest struct {
	Rating            *int    `json:"rating"`
	Title             *string `json:"title"`
	Content           *string `json:"content"`
	Pros              *string `json:"pros"`
	Cons              *string `json:"cons"`
	RecommendedBudget *string `json:"recommended_budget"`
}

// ReviewResponse represents a review in responses
type ReviewResponse struct {
	ID                string `json:"id"`
	UserID            string `json:"user_id"`
	DestinationID     string `json:"destination_id"`
	TripID            string `json:"trip_id,omitempty"`
	Rating            int    `json:"rating"`
	Title             string `json:"title"`
	Content           string `json:"content"`
	Pros              string `json:"pros,omitempty"`
	Cons              string `json:"cons,omitempty"`
	VisitDate         string `json:"visit_date"`
	TravelType        string `json:"travel_type"`
	RecommendedBudget string `json:"recommended_budget"`
	IsVerified        bool   `json:"is_verified"`
	HelpfulVotes      int    `json:"helpful_votes"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// CreateReviewResponse envelope
type CreateReviewResponse struct {
	Review ReviewResponse `json:"review"`
}

// ReviewListResponse envelope
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}
