package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
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

type plannerFixture struct {
	handler      *handlers.PlannerHandler
	trips        *mem.TripStore
	destinations *mem.DestinationStore
	userID       uuid.UUID
	goa          models.Destination
}

func newPlannerFixture() *plannerFixture {
	trips := mem.NewTripStore()
	destinations := mem.NewDestinationStore()
	goa := models.Destination{
		ID:       uuid.New(),
		Name:     "Goa",
		ImageURL: "https://cdn.example.com/goa.jpg",
	}
	destinations.AddDestination(goa)

	manager := planner.NewManager(trips)
	generator := planner.NewGenerator(trips)
	return &plannerFixture{
		handler:      handlers.NewPlannerHandler(manager, generator, destinations),
		trips:        trips,
		destinations: destinations,
		userID:       uuid.New(),
		goa:          goa,
	}
}

func (f *plannerFixture) post(t *testing.T, form url.Values, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/planner/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authenticated {
		req = req.WithContext(utils.WithUserID(context.Background(), f.userID, "traveler@example.com"))
	}
	rr := httptest.NewRecorder()
	f.handler.GenerateItinerary(rr, req)
	return rr
}

func decodePlannerResponse(t *testing.T, rr *httptest.ResponseRecorder) dto.GenerateItineraryResponse {
	t.Helper()
	var resp dto.GenerateItineraryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestGenerateItinerarySuccess(t *testing.T) {
	f := newPlannerFixture()
	form := url.Values{
		"destination": {f.goa.ID.String()},
		"duration":    {"5"},
		"travel_type": {"family"},
		"budget":      {"Medium"},
		"interests[]": {"beaches", "food"},
	}

	rr := f.post(t, form, true)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodePlannerResponse(t, rr)
	require.True(t, resp.Success)
	assert.Equal(t, "Trip itinerary generated successfully!", resp.Message)
	assert.Equal(t, "Family Trip to Goa", resp.TripTitle)
	assert.Equal(t, "Goa", resp.DestinationName)
	assert.Equal(t, f.goa.ImageURL, resp.ImageURL)
	require.Len(t, resp.Days, 5)
	assert.Equal(t, 1, resp.Days[0].Day)
	assert.Equal(t, "Day 1 in Goa", resp.Days[0].Title)
	assert.Equal(t, "Explore the beauty of Goa", resp.Days[0].Description)
	assert.Len(t, resp.Days[0].Activities, 3)

	tripID, err := uuid.Parse(resp.TripID)
	require.NoError(t, err)
	trip, err := f.trips.GetTrip(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, f.userID, trip.UserID)
	assert.Equal(t, models.TripStatusPlanned, trip.Status)
	assert.Equal(t, 5, trip.DurationDays)
	assert.Equal(t, 5000.0, trip.DailyBudget)
	assert.Equal(t, 25000.0, trip.TotalBudget)
	assert.Equal(t, []string{"beaches", "food"}, trip.Interests)
}

func TestGenerateItineraryDefaults(t *testing.T) {
	f := newPlannerFixture()
	form := url.Values{"destination": {f.goa.ID.String()}}

	rr := f.post(t, form, true)
	resp := decodePlannerResponse(t, rr)
	require.True(t, resp.Success)
	assert.Equal(t, "Family Trip to Goa", resp.TripTitle)
	assert.Len(t, resp.Days, 5)

	trip, err := f.trips.GetTrip(context.Background(), uuid.MustParse(resp.TripID))
	require.NoError(t, err)
	assert.Equal(t, "family", trip.TravelType)
	assert.Equal(t, 5000.0, trip.DailyBudget)
	// No interests[] in the form must still produce a non-NULL array value
	assert.Equal(t, []string{}, trip.Interests)
}

func TestGenerateItineraryLiteralBudget(t *testing.T) {
	f := newPlannerFixture()
	form := url.Values{
		"destination": {f.goa.ID.String()},
		"duration":    {"3"},
		"budget":      {"1234.5"},
	}

	rr := f.post(t, form, true)
	resp := decodePlannerResponse(t, rr)
	require.True(t, resp.Success)

	trip, err := f.trips.GetTrip(context.Background(), uuid.MustParse(resp.TripID))
	require.NoError(t, err)
	assert.Equal(t, 1234.5, trip.DailyBudget)
	assert.Equal(t, 3703.5, trip.TotalBudget)
}

func TestGenerateItineraryMissingDestination(t *testing.T) {
	f := newPlannerFixture()

	rr := f.post(t, url.Values{}, true)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodePlannerResponse(t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, "destination is required", resp.Message)
}

func TestGenerateItineraryUnknownDestination(t *testing.T) {
	f := newPlannerFixture()
	form := url.Values{"destination": {uuid.New().String()}}

	rr := f.post(t, form, true)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodePlannerResponse(t, rr)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestGenerateItineraryDurationOutOfRange(t *testing.T) {
	f := newPlannerFixture()
	for _, duration := range []string{"0", "31", "-3"} {
		form := url.Values{
			"destination": {f.goa.ID.String()},
			"duration":    {duration},
		}
		rr := f.post(t, form, true)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodePlannerResponse(t, rr)
		assert.False(t, resp.Success, "duration %s should be rejected", duration)
		assert.Equal(t, "duration must be between 1 and 30 days", resp.Message)
	}
}

func TestGenerateItineraryUnauthenticated(t *testing.T) {
	f := newPlannerFixture()
	form := url.Values{"destination": {f.goa.ID.String()}}

	rr := f.post(t, form, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Unauthorized", resp.Error)
}
