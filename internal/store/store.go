// Package store defines the persistence interfaces consumed by the trip
// planning core, with a PostgreSQL implementation in store/pg and an
// in-memory implementation in store/mem used by tests.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"WANDERINDIA_BACK-END/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist
var ErrNotFound = errors.New("record not found")

// TripStore persists trips and their itinerary days
type TripStore interface {
	// CreateTrip inserts a new trip. The caller is expected to have derived
	// duration_days and total_budget before calling.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// UpdateTrip persists a mutation of an existing trip
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip loads a trip by id, ErrNotFound when absent
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)

	// ListTripsByUser returns the user's trips newest first, optionally
	// filtered by status ("all" disables the filter), plus the total count
	ListTripsByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]models.Trip, int, error)

	// DeleteTrip removes a trip and, through the schema cascade, its days
	DeleteTrip(ctx context.Context, id uuid.UUID) error

	// CreateTripDays inserts itinerary days preserving slice order
	CreateTripDays(ctx context.Context, days []models.TripDay) error

	// ListTripDays returns a trip's days in ascending day_number order
	ListTripDays(ctx context.Context, tripID uuid.UUID) ([]models.TripDay, error)

	// DeleteTripDays removes all days belonging to a trip
	DeleteTripDays(ctx context.Context, tripID uuid.UUID) error
}

// DestinationStore provides keyed lookup of destination records
type DestinationStore interface {
	// GetDestination loads a destination by id, ErrNotFound when absent
	GetDestination(ctx context.Context, id uuid.UUID) (*models.Destination, error)

	// ListDestinations returns all destinations ordered by name
	ListDestinations(ctx context.Context) ([]models.Destination, error)
}
