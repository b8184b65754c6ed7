package mem_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/store"
	"WANDERINDIA_BACK-END/internal/store/mem"
)

func newTrip(userID uuid.UUID, status string, createdAt time.Time) *models.Trip {
	return &models.Trip{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Family Trip to Goa",
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestTripCRUD(t *testing.T) {
	s := mem.NewTripStore()
	ctx := context.Background()

	trip := newTrip(uuid.New(), models.TripStatusPlanned, time.Now())
	require.NoError(t, s.CreateTrip(ctx, trip))

	got, err := s.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.Title, got.Title)

	got.Status = models.TripStatusCompleted
	require.NoError(t, s.UpdateTrip(ctx, got))

	got, err = s.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, got.Status)

	require.NoError(t, s.DeleteTrip(ctx, trip.ID))
	_, err = s.GetTrip(ctx, trip.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTripNotFound(t *testing.T) {
	s := mem.NewTripStore()
	ctx := context.Background()

	_, err := s.GetTrip(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.UpdateTrip(ctx, &models.Trip{ID: uuid.New()})
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.DeleteTrip(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListTripsByUser(t *testing.T) {
	s := mem.NewTripStore()
	ctx := context.Background()
	userID := uuid.New()

	base := time.Now()
	oldest := newTrip(userID, models.TripStatusPlanned, base.Add(-2*time.Hour))
	middle := newTrip(userID, models.TripStatusCompleted, base.Add(-time.Hour))
	newest := newTrip(userID, models.TripStatusPlanned, base)
	other := newTrip(uuid.New(), models.TripStatusPlanned, base)
	for _, trip := range []*models.Trip{oldest, middle, newest, other} {
		require.NoError(t, s.CreateTrip(ctx, trip))
	}

	trips, total, err := s.ListTripsByUser(ctx, userID, "all", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, trips, 3)
	assert.Equal(t, newest.ID, trips[0].ID)
	assert.Equal(t, middle.ID, trips[1].ID)
	assert.Equal(t, oldest.ID, trips[2].ID)

	trips, total, err = s.ListTripsByUser(ctx, userID, models.TripStatusCompleted, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, trips, 1)
	assert.Equal(t, middle.ID, trips[0].ID)

	trips, total, err = s.ListTripsByUser(ctx, userID, "all", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, trips, 1)
	assert.Equal(t, middle.ID, trips[0].ID)

	trips, total, err = s.ListTripsByUser(ctx, userID, "all", 10, 99)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, trips)
}

func TestTripDaysLifecycle(t *testing.T) {
	s := mem.NewTripStore()
	ctx := context.Background()

	trip := newTrip(uuid.New(), models.TripStatusPlanned, time.Now())
	require.NoError(t, s.CreateTrip(ctx, trip))

	days := []models.TripDay{
		{ID: uuid.New(), TripID: trip.ID, DayNumber: 2, Title: "Day 2 in Goa"},
		{ID: uuid.New(), TripID: trip.ID, DayNumber: 1, Title: "Day 1 in Goa"},
	}
	require.NoError(t, s.CreateTripDays(ctx, days))

	got, err := s.ListTripDays(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].DayNumber)
	assert.Equal(t, 2, got[1].DayNumber)

	require.NoError(t, s.DeleteTripDays(ctx, trip.ID))
	got, err = s.ListTripDays(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteTripCascadesToDays(t *testing.T) {
	s := mem.NewTripStore()
	ctx := context.Background()

	trip := newTrip(uuid.New(), models.TripStatusPlanned, time.Now())
	require.NoError(t, s.CreateTrip(ctx, trip))
	require.NoError(t, s.CreateTripDays(ctx, []models.TripDay{
		{ID: uuid.New(), TripID: trip.ID, DayNumber: 1},
	}))

	require.NoError(t, s.DeleteTrip(ctx, trip.ID))
	got, err := s.ListTripDays(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDestinationStore(t *testing.T) {
	s := mem.NewDestinationStore()
	ctx := context.Background()

	goa := models.Destination{ID: uuid.New(), Name: "Goa"}
	agra := models.Destination{ID: uuid.New(), Name: "Agra"}
	s.AddDestination(goa)
	s.AddDestination(agra)

	got, err := s.GetDestination(ctx, goa.ID)
	require.NoError(t, err)
	assert.Equal(t, "Goa", got.Name)

	_, err = s.GetDestination(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err := s.ListDestinations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Agra", all[0].Name)
	assert.Equal(t, "Goa", all[1].Name)
}
