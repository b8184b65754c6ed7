package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's review of a destination, optionally tied to one of their trips.
// One review per user per destination.
type Review struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	DestinationID uuid.UUID  `json:"destination_id" db:"destination_id"`
	TripID        *uuid.UUID `json:"trip_id,omitempty" db:"trip_id"`

	Rating  int    `json:"rating" db:"rating"` // 1-5
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
	Pros    string `json:"pros" db:"pros"`
	Cons    string `json:"cons" db:"cons"`

	VisitDate         time.Time `json:"visit_date" db:"visit_date"`
	TravelType        string    `json:"travel_type" db:"travel_type"`
	RecommendedBudget string    `json:"recommended_budget" db:"recommended_budget"` // Low | Medium | High

	IsVerified   bool `json:"is_verified" db:"is_verified"`
	HelpfulVotes int  `json:"helpful_votes" db:"helpful_votes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
