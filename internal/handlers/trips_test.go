package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WANDERINDIA_BACK-END/internal/dto"
	"WANDERINDIA_BACK-END/internal/handlers"
	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/planner"
	"WANDERINDIA_BACK-END/internal/store/mem"
	"WANDERINDIA_BACK-END/internal/utils"
)

type tripsFixture struct {
	handler      *handlers.TripsHandler
	trips        *mem.TripStore
	destinations *mem.DestinationStore
	manager      *planner.Manager
	userID       uuid.UUID
	goa          models.Destination
}

func newTripsFixture() *tripsFixture {
	trips := mem.NewTripStore()
	destinations := mem.NewDestinationStore()
	goa := models.Destination{ID: uuid.New(), Name: "Goa"}
	destinations.AddDestination(goa)
	manager := planner.NewManager(trips)
	return &tripsFixture{
		handler:      handlers.NewTripsHandler(manager, trips, destinations),
		trips:        trips,
		destinations: destinations,
		manager:      manager,
		userID:       uuid.New(),
		goa:          goa,
	}
}

func (f *tripsFixture) request(t *testing.T, method, path string, body any, asUser uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if asUser != uuid.Nil {
		req = req.WithContext(utils.WithUserID(context.Background(), asUser, "traveler@example.com"))
	}
	rr := httptest.NewRecorder()
	if path == "/api/trips" {
		f.handler.Trips(rr, req)
	} else {
		f.handler.TripByID(rr, req)
	}
	return rr
}

func (f *tripsFixture) seedTrip(t *testing.T, owner uuid.UUID) *models.Trip {
	t.Helper()
	trip := &models.Trip{
		UserID:        owner,
		DestinationID: f.goa.ID,
		Title:         "Family Trip to Goa",
		StartDate:     utils.Today(),
		EndDate:       utils.Today().AddDate(0, 0, 2),
		DailyBudget:   2000,
		TravelType:    "family",
		Status:        models.TripStatusPlanned,
	}
	require.NoError(t, f.manager.CreateTrip(context.Background(), trip))
	return trip
}

func TestCreateTripHandler(t *testing.T) {
	f := newTripsFixture()
	body := dto.CreateTripRequest{
		DestinationID: f.goa.ID.String(),
		Title:         "Beach week",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-05",
		Budget:        "High",
		TravelType:    "couple",
	}

	rr := f.request(t, http.MethodPost, "/api/trips", body, f.userID)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp dto.CreateTripResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Beach week", resp.Trip.Title)
	assert.Equal(t, 5, resp.Trip.DurationDays)
	assert.Equal(t, 10000.0, resp.Trip.DailyBudget)
	assert.Equal(t, 50000.0, resp.Trip.TotalBudget)
	assert.Equal(t, models.TripStatusPlanned, resp.Trip.Status)

	// The request carried no interests; the stored row must still hold an
	// empty array, not NULL
	stored, err := f.trips.GetTrip(context.Background(), uuid.MustParse(resp.Trip.ID))
	require.NoError(t, err)
	assert.Equal(t, []string{}, stored.Interests)
}

func TestCreateTripRejectsEndNotAfterStart(t *testing.T) {
	f := newTripsFixture()
	for _, end := range []string{"2026-09-01", "2026-08-30"} {
		body := dto.CreateTripRequest{
			DestinationID: f.goa.ID.String(),
			Title:         "Beach week",
			StartDate:     "2026-09-01",
			EndDate:       end,
			DailyBudget:   1000,
		}
		rr := f.request(t, http.MethodPost, "/api/trips", body, f.userID)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "end_date %s should be rejected", end)
	}
}

func TestCreateTripUnknownDestination(t *testing.T) {
	f := newTripsFixture()
	body := dto.CreateTripRequest{
		DestinationID: uuid.New().String(),
		Title:         "Beach week",
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-05",
		DailyBudget:   1000,
	}
	rr := f.request(t, http.MethodPost, "/api/trips", body, f.userID)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListTripsHandler(t *testing.T) {
	f := newTripsFixture()
	f.seedTrip(t, f.userID)
	f.seedTrip(t, f.userID)
	f.seedTrip(t, uuid.New())

	rr := f.request(t, http.MethodGet, "/api/trips", nil, f.userID)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp dto.TripListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Len(t, resp.Trips, 2)
}

func TestTripDetailForbiddenForOtherUser(t *testing.T) {
	f := newTripsFixture()
	trip := f.seedTrip(t, f.userID)

	rr := f.request(t, http.MethodGet, "/api/trips/"+trip.ID.String(), nil, uuid.New())
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestTripDetailNotFound(t *testing.T) {
	f := newTripsFixture()
	rr := f.request(t, http.MethodGet, "/api/trips/"+uuid.New().String(), nil, f.userID)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCompleteTripHandler(t *testing.T) {
	f := newTripsFixture()
	trip := f.seedTrip(t, f.userID)
	path := "/api/trips/" + trip.ID.String() + "/complete"

	rr := f.request(t, http.MethodPost, path, nil, uuid.New())
	assert.Equal(t, http.StatusForbidden, rr.Code)

	stored, err := f.trips.GetTrip(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusPlanned, stored.Status)

	rr = f.request(t, http.MethodPost, path, nil, f.userID)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp dto.CreateTripResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.TripStatusCompleted, resp.Trip.Status)
}

func TestDeleteTripHandler(t *testing.T) {
	f := newTripsFixture()
	trip := f.seedTrip(t, f.userID)

	rr := f.request(t, http.MethodDelete, "/api/trips/"+trip.ID.String(), nil, uuid.New())
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = f.request(t, http.MethodDelete, "/api/trips/"+trip.ID.String(), nil, f.userID)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = f.request(t, http.MethodGet, "/api/trips/"+trip.ID.String(), nil, f.userID)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTripsUnauthenticated(t *testing.T) {
	f := newTripsFixture()
	rr := f.request(t, http.MethodGet, "/api/trips", nil, uuid.Nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
