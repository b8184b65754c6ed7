package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"WANDERINDIA_BACK-END/internal/dto"
	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/planner"
	"WANDERINDIA_BACK-END/internal/store"
	"WANDERINDIA_BACK-END/internal/utils"
)

// Planner endpoint defaults
const (
	defaultDuration   = 5
	minDuration       = 1
	maxDuration       = 30
	defaultBudgetTier = "Medium"
)

var titleCaser = cases.Title(language.English)

// PlannerHandler serves the itinerary generation endpoint
type PlannerHandler struct {
	manager      *planner.Manager
	generator    *planner.Generator
	destinations store.DestinationStore
}

// NewPlannerHandler creates a new PlannerHandler
func NewPlannerHandler(manager *planner.Manager, generator *planner.Generator, destinations store.DestinationStore) *PlannerHandler {
	return &PlannerHandler{manager: manager, generator: generator, destinations: destinations}
}

// GenerateItinerary handles POST /api/planner/generate
// @Summary Generate a trip itinerary
// @Description Creates a trip starting today and a day-by-day itinerary from the travel-type template
// @Tags planner
// @Accept x-www-form-urlencoded
// @Produce json
// @Param destination formData string true "Destination ID"
// @Param duration formData int false "Trip length in days (1-30, default 5)"
// @Param travel_type formData string false "family | solo | couple | adventure"
// @Param budget formData string false "Low | Medium | High | literal daily rate"
// @Param interests[] formData []string false "Interest tags"
// @Success 200 {object} dto.GenerateItineraryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/planner/generate [post]
func (h *PlannerHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	// The planner always answers 200 with a success flag; only a missing
	// identity is reported through the normal error envelope.
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	if r.Method != http.MethodPost {
		writePlannerFailure(w, "Invalid request")
		return
	}
	if err := r.ParseForm(); err != nil {
		writePlannerFailure(w, "Invalid request")
		return
	}

	destinationID, err := uuid.Parse(strings.TrimSpace(r.PostFormValue("destination")))
	if err != nil {
		writePlannerFailure(w, "destination is required")
		return
	}

	duration := defaultDuration
	if v := strings.TrimSpace(r.PostFormValue("duration")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writePlannerFailure(w, "duration must be an integer")
			return
		}
		duration = n
	}
	if duration < minDuration || duration > maxDuration {
		writePlannerFailure(w, fmt.Sprintf("duration must be between %d and %d days", minDuration, maxDuration))
		return
	}

	travelType := strings.TrimSpace(r.PostFormValue("travel_type"))
	if travelType == "" {
		travelType = planner.DefaultTravelType
	}
	budget := r.PostFormValue("budget")
	if budget == "" {
		budget = defaultBudgetTier
	}
	interests := r.PostForm["interests[]"]

	dailyBudget := planner.ResolveDailyRate(budget)

	ctx := r.Context()
	destination, err := h.destinations.GetDestination(ctx, destinationID)
	if err != nil {
		writePlannerFailure(w, err.Error())
		return
	}

	today := utils.Today()
	trip := &models.Trip{
		UserID:        userID,
		DestinationID: destination.ID,
		Title:         fmt.Sprintf("%s Trip to %s", titleCaser.String(travelType), destination.Name),
		StartDate:     today,
		EndDate:       today.AddDate(0, 0, duration-1),
		DailyBudget:   dailyBudget,
		TravelType:    travelType,
		Interests:     interests,
		Status:        models.TripStatusPlanned,
	}
	if err := h.manager.CreateTrip(ctx, trip); err != nil {
		writePlannerFailure(w, err.Error())
		return
	}

	days, err := h.generator.Generate(ctx, trip, destination.Name)
	if err != nil {
		writePlannerFailure(w, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.GenerateItineraryResponse{
		Success:         true,
		Message:         "Trip itinerary generated successfully!",
		TripID:          trip.ID.String(),
		Days:            serializeDays(days),
		DestinationName: destination.Name,
		TripTitle:       trip.Title,
		ImageURL:        destination.ImageURL,
	})
}

func writePlannerFailure(w http.ResponseWriter, message string) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.GenerateItineraryResponse{
		Success: false,
		Message: message,
	})
}

func serializeDays(days []models.TripDay) []dto.ItineraryDay {
	out := make([]dto.ItineraryDay, 0, len(days))
	for _, d := range days {
		out = append(out, dto.ItineraryDay{
			Day:         d.DayNumber,
			Title:       d.Title,
			Description: d.Description,
			Activities:  d.Activities,
		})
	}
	return out
}
