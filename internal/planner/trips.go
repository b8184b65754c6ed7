// Package planner holds the trip planning core: budget tier resolution,
// trip persistence with derived-field recomputation, and itinerary generation.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/store"
)

// ErrNotOwner is returned when a user tries to mutate a trip they do not own
var ErrNotOwner = errors.New("trip does not belong to the requesting user")

// ErrInvalidDates is returned when a trip's end date falls before its start date
var ErrInvalidDates = errors.New("end_date cannot be before start_date")

// Derive computes the two derived trip fields from their inputs:
// duration_days = calendar days between start and end inclusive, and
// total_budget = daily rate times that duration. Both dates are expected to be
// midnight-normalized.
func Derive(start, end time.Time, dailyBudget float64) (durationDays int, totalBudget float64) {
	durationDays = int(end.Sub(start)/(24*time.Hour)) + 1
	totalBudget = dailyBudget * float64(durationDays)
	return durationDays, totalBudget
}

// Manager owns the trip write path. Every persisted mutation flows through
// save so the derived fields can never drift from the dates and daily rate.
type Manager struct {
	trips store.TripStore
}

// NewManager creates a Manager on the given trip store
func NewManager(trips store.TripStore) *Manager {
	return &Manager{trips: trips}
}

// CreateTrip derives duration and total budget, stamps identity and
// timestamps, and inserts the trip.
func (m *Manager) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if trip.Status == "" {
		trip.Status = models.TripStatusPlanned
	}
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if err := m.derive(trip); err != nil {
		return err
	}
	if err := m.trips.CreateTrip(ctx, trip); err != nil {
		return fmt.Errorf("create trip: %w", err)
	}
	return nil
}

// SaveTrip persists a mutation of an existing trip. The derived fields are
// recomputed unconditionally, overwriting whatever the caller set.
func (m *Manager) SaveTrip(ctx context.Context, trip *models.Trip) error {
	trip.UpdatedAt = time.Now()
	if err := m.derive(trip); err != nil {
		return err
	}
	if err := m.trips.UpdateTrip(ctx, trip); err != nil {
		return fmt.Errorf("save trip: %w", err)
	}
	return nil
}

// MarkCompleted sets a trip's status to completed on behalf of its owner.
// Requests by anyone else fail with ErrNotOwner and leave the trip untouched.
func (m *Manager) MarkCompleted(ctx context.Context, tripID, requesterID uuid.UUID) (*models.Trip, error) {
	trip, err := m.trips.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.UserID != requesterID {
		return nil, ErrNotOwner
	}
	trip.Status = models.TripStatusCompleted
	if err := m.SaveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// derive normalizes a trip for persistence and recomputes duration_days and
// total_budget whenever both dates are set. It guards the one invariant the
// derivation itself must not break: a span that would produce a non-positive
// duration is rejected rather than persisted.
func (m *Manager) derive(trip *models.Trip) error {
	// interests is NOT NULL in the schema; pgx encodes a nil slice as SQL NULL
	if trip.Interests == nil {
		trip.Interests = []string{}
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return nil
	}
	if trip.EndDate.Before(trip.StartDate) {
		return ErrInvalidDates
	}
	trip.DurationDays, trip.TotalBudget = Derive(trip.StartDate, trip.EndDate, trip.DailyBudget)
	return nil
}
