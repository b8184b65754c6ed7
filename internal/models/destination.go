package models

import (
	"time"

	"github.com/google/uuid"
)

// Destination represents a travel destination
type Destination struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Tagline     string    `json:"tagline" db:"tagline"`
	Description string    `json:"description" db:"description"`
	Type        string    `json:"type" db:"type"` // e.g., Family, Honeymoon, Adventure
	Budget      string    `json:"budget" db:"budget"`
	BestTime    string    `json:"best_time" db:"best_time"`
	BadTime     string    `json:"bad_time" db:"bad_time"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Languages   []string  `json:"languages" db:"languages"`

	// Average daily expense breakdown
	StayCost       float64 `json:"stay_cost" db:"stay_cost"`
	FoodCost       float64 `json:"food_cost" db:"food_cost"`
	TransportCost  float64 `json:"transport_cost" db:"transport_cost"`
	ActivitiesCost float64 `json:"activities_cost" db:"activities_cost"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TotalDailyCost sums the per-day expense breakdown
func (d *Destination) TotalDailyCost() float64 {
	return d.StayCost + d.FoodCost + d.TransportCost + d.ActivitiesCost
}
