package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/store"
)

// Generator builds and persists a trip's day-by-day itinerary
type Generator struct {
	trips store.TripStore
}

// NewGenerator creates a Generator on the given trip store
func NewGenerator(trips store.TripStore) *Generator {
	return &Generator{trips: trips}
}

// BuildDays produces one TripDay per day of the trip, 1..duration_days, each
// carrying the first template activities for the trip's travel type. Unknown
// travel types fall back to the family template.
func BuildDays(trip *models.Trip, destinationName string) []models.TripDay {
	days := make([]models.TripDay, 0, trip.DurationDays)
	for dayNumber := 1; dayNumber <= trip.DurationDays; dayNumber++ {
		days = append(days, models.TripDay{
			ID:          uuid.New(),
			TripID:      trip.ID,
			DayNumber:   dayNumber,
			Title:       fmt.Sprintf("Day %d in %s", dayNumber, destinationName),
			Description: fmt.Sprintf("Explore the beauty of %s", destinationName),
			Activities:  dayActivities(trip.TravelType),
		})
	}
	return days
}

// Generate builds the itinerary for a trip and persists it in ascending
// day_number order.
//
// Precondition: call exactly once per trip. Generation does not clear
// existing days, so a repeated call duplicates the itinerary.
func (g *Generator) Generate(ctx context.Context, trip *models.Trip, destinationName string) ([]models.TripDay, error) {
	days := BuildDays(trip, destinationName)
	if err := g.trips.CreateTripDays(ctx, days); err != nil {
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}
	return days, nil
}
