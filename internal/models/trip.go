package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip statuses
const (
	TripStatusPlanned   = "planned"
	TripStatusOngoing   = "ongoing"
	TripStatusCompleted = "completed"
	TripStatusCancelled = "cancelled"
)

// Trip represents a planned visit to one destination with dates, budget,
// and a generated day-by-day itinerary
type Trip struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	DestinationID uuid.UUID `json:"destination_id" db:"destination_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	StartDate     time.Time `json:"start_date" db:"start_date"`
	EndDate       time.Time `json:"end_date" db:"end_date"`
	DurationDays  int       `json:"duration_days" db:"duration_days"`
	DailyBudget   float64   `json:"daily_budget" db:"daily_budget"`
	TotalBudget   float64   `json:"total_budget" db:"total_budget"`
	TravelType    string    `json:"travel_type" db:"travel_type"`
	Interests     []string  `json:"interests" db:"interests"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// TripDay is one calendar day within a trip's itinerary.
// Days are unique per (trip_id, day_number) and are removed together with their trip.
type TripDay struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TripID      uuid.UUID `json:"trip_id" db:"trip_id"`
	DayNumber   int       `json:"day_number" db:"day_number"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Activities  []string  `json:"activities" db:"activities"`
}
