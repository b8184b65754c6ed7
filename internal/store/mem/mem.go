// Package mem provides in-memory implementations of the store interfaces.
// They back the planner tests and keep the core exercisable without Postgres.
package mem

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/store"
)

// TripStore is an in-memory implementation of store.TripStore
type TripStore struct {
	mu    sync.RWMutex
	trips map[uuid.UUID]models.Trip
	days  []models.TripDay // insertion order preserved
}

// NewTripStore creates an empty in-memory TripStore
func NewTripStore() *TripStore {
	return &TripStore{
		trips: make(map[uuid.UUID]models.Trip),
	}
}

// CreateTrip inserts a new trip
func (s *TripStore) CreateTrip(_ context.Context, t *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[t.ID] = *t
	return nil
}

// UpdateTrip persists a mutation of an existing trip
func (s *TripStore) UpdateTrip(_ context.Context, t *models.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trips[t.ID]; !ok {
		return store.ErrNotFound
	}
	s.trips[t.ID] = *t
	return nil
}

// GetTrip loads a trip by id
func (s *TripStore) GetTrip(_ context.Context, id uuid.UUID) (*models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trips[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

// ListTripsByUser returns the user's trips newest first with a total count
func (s *TripStore) ListTripsByUser(_ context.Context, userID uuid.UUID, status string, limit, offset int) ([]models.Trip, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Trip, 0)
	for _, t := range s.trips {
		if t.UserID != userID {
			continue
		}
		if status != "all" && t.Status != status {
			continue
		}
		matched = append(matched, t)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= len(matched) {
		return []models.Trip{}, total, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

// DeleteTrip removes a trip and cascades to its days
func (s *TripStore) DeleteTrip(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trips[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.trips, id)
	kept := s.days[:0]
	for _, d := range s.days {
		if d.TripID != id {
			kept = append(kept, d)
		}
	}
	s.days = kept
	return nil
}

// CreateTripDays appends itinerary days preserving slice order.
// Unlike the Postgres schema it does not enforce (trip_id, day_number)
// uniqueness, which lets tests observe repeated generation.
func (s *TripStore) CreateTripDays(_ context.Context, days []models.TripDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = append(s.days, days...)
	return nil
}

// ListTripDays returns a trip's days in ascending day_number order
func (s *TripStore) ListTripDays(_ context.Context, tripID uuid.UUID) ([]models.TripDay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	days := make([]models.TripDay, 0)
	for _, d := range s.days {
		if d.TripID == tripID {
			days = append(days, d)
		}
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].DayNumber < days[j].DayNumber
	})
	return days, nil
}

// DeleteTripDays removes all days belonging to a trip
func (s *TripStore) DeleteTripDays(_ context.Context, tripID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.days[:0]
	for _, d := range s.days {
		if d.TripID != tripID {
			kept = append(kept, d)
		}
	}
	s.days = kept
	return nil
}

// DestinationStore is an in-memory implementation of store.DestinationStore
type DestinationStore struct {
	mu           sync.RWMutex
	destinations map[uuid.UUID]models.Destination
}

// NewDestinationStore creates an empty in-memory DestinationStore
func NewDestinationStore() *DestinationStore {
	return &DestinationStore{
		destinations: make(map[uuid.UUID]models.Destination),
	}
}

// AddDestination seeds a destination record
func (s *DestinationStore) AddDestination(d models.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destinations[d.ID] = d
}

// GetDestination loads a destination by id
func (s *DestinationStore) GetDestination(_ context.Context, id uuid.UUID) (*models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.destinations[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &d, nil
}

// ListDestinations returns all destinations ordered by name
func (s *DestinationStore) ListDestinations(_ context.Context) ([]models.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	destinations := make([]models.Destination, 0, len(s.destinations))
	for _, d := range s.destinations {
		destinations = append(destinations, d)
	}
	sort.Slice(destinations, func(i, j int) bool {
		return destinations[i].Name < destinations[j].Name
	})
	return destinations, nil
}
