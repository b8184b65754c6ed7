package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"WANDERINDIA_BACK-END/internal/dto"
	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/planner"
	"WANDERINDIA_BACK-END/internal/store"
	"WANDERINDIA_BACK-END/internal/utils"
)

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	manager      *planner.Manager
	trips        store.TripStore
	destinations store.DestinationStore
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(manager *planner.Manager, trips store.TripStore, destinations store.DestinationStore) *TripsHandler {
	return &TripsHandler{manager: manager, trips: trips, destinations: destinations}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateTrip(w, r)
	case http.MethodGet:
		h.ListTrips(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TripByID dispatches for /api/trips/{trip_id} and /api/trips/{trip_id}/complete
func (h *TripsHandler) TripByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/trips/")
	if strings.HasSuffix(rest, "/complete") {
		h.CompleteTrip(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.TripDetail(w, r)
	case http.MethodDelete:
		h.DeleteTrip(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateTrip handles POST /api/trips
// @Summary Create a trip manually
// @Tags trips
// @Accept json
// @Produce json
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} dto.CreateTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	req.Title = strings.TrimSpace(req.Title)
	req.TravelType = strings.TrimSpace(req.TravelType)
	if req.TravelType == "" {
		req.TravelType = planner.DefaultTravelType
	}
	if req.DestinationID == "" || req.Title == "" || req.StartDate == "" || req.EndDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination_id, title, start_date, end_date are required")
		return
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination_id must be UUID")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	// Intake rule for this entry path: the end date must be strictly after
	// the start date (the generated-itinerary path may produce 1-day trips
	// with equal dates, this form may not).
	if !endDate.After(startDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be after start_date")
		return
	}

	dailyBudget := req.DailyBudget
	if dailyBudget == 0 {
		dailyBudget = planner.ResolveDailyRate(req.Budget)
	}
	if dailyBudget <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "daily_budget must be positive")
		return
	}

	// Destination is a foreign reference; make sure it exists
	if _, err := h.destinations.GetDestination(r.Context(), destinationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Destination not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	trip := &models.Trip{
		UserID:        userID,
		DestinationID: destinationID,
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     startDate,
		EndDate:       endDate,
		DailyBudget:   dailyBudget,
		TravelType:    req.TravelType,
		Interests:     req.Interests,
		Status:        models.TripStatusPlanned,
	}
	if err := h.manager.CreateTrip(r.Context(), trip); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateTripResponse{Trip: tripToResponse(trip)})
}

// ListTrips handles GET /api/trips with a status filter and pagination
// @Summary List the requester's trips
// @Tags trips
// @Produce json
// @Param status query string false "planned|ongoing|completed|cancelled|all"
// @Param limit query int false "items per page"
// @Param offset query int false "offset"
// @Success 200 {object} dto.TripListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	q := r.URL.Query()
	status := strings.ToLower(strings.TrimSpace(q.Get("status")))
	if status == "" {
		status = "all"
	}
	switch status {
	case "all", models.TripStatusPlanned, models.TripStatusOngoing, models.TripStatusCompleted, models.TripStatusCancelled:
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid status")
		return
	}
	limit := 20
	offset := 0
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 100 {
				n = 100
			}
			limit = n
		}
	}
	if v := strings.TrimSpace(q.Get("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	trips, total, err := h.trips.ListTripsByUser(r.Context(), userID, status, limit, offset)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	items := make([]dto.TripResponse, 0, len(trips))
	for i := range trips {
		items = append(items, tripToResponse(&trips[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.TripListResponse{
		Trips: items,
		Pagination: dto.Pagination{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	})
}

// TripDetail handles GET /api/trips/{trip_id}
// @Summary Get a trip with its itinerary days
// @Tags trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.TripDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	trip, err := h.trips.GetTrip(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if trip.UserID != requesterID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Trip belongs to another user")
		return
	}

	days, err := h.trips.ListTripDays(r.Context(), tripID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripDetailResponse{
		Trip: tripToResponse(trip),
		Days: serializeDays(days),
	})
}

// CompleteTrip handles POST /api/trips/{trip_id}/complete
// @Summary Mark a trip as completed (visited)
// @Tags trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.CreateTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/complete [post]
func (h *TripsHandler) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	idStr := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/trips/"), "/complete")
	tripID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	trip, err := h.manager.MarkCompleted(r.Context(), tripID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
		case errors.Is(err, planner.ErrNotOwner):
			utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the trip owner can mark it completed")
		default:
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CreateTripResponse{Trip: tripToResponse(trip)})
}

// DeleteTrip handles DELETE /api/trips/{trip_id}
// @Summary Delete a trip and its itinerary
// @Tags trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	trip, err := h.trips.GetTrip(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if trip.UserID != requesterID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the trip owner can delete it")
		return
	}

	if err := h.trips.DeleteTrip(r.Context(), tripID); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Trip deleted successfully"})
}

func tripIDFromPath(path string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimPrefix(path, "/api/trips/"))
}

func tripToResponse(t *models.Trip) dto.TripResponse {
	interests := t.Interests
	if interests == nil {
		interests = []string{}
	}
	return dto.TripResponse{
		ID:            t.ID.String(),
		DestinationID: t.DestinationID.String(),
		Title:         t.Title,
		Description:   t.Description,
		StartDate:     utils.FormatDate(t.StartDate),
		EndDate:       utils.FormatDate(t.EndDate),
		DurationDays:  t.DurationDays,
		DailyBudget:   t.DailyBudget,
		TotalBudget:   t.TotalBudget,
		TravelType:    t.TravelType,
		Interests:     interests,
		Status:        t.Status,
		CreatedAt:     utils.FormatTimestamp(t.CreatedAt),
		UpdatedAt:     utils.FormatTimestamp(t.UpdatedAt),
	}
}
