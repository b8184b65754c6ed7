package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"WANDERINDIA_BACK-END/internal/dto"
	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/store"
	"WANDERINDIA_BACK-END/internal/utils"
)

// DestinationsHandler serves read-only destination endpoints
type DestinationsHandler struct {
	destinations store.DestinationStore
}

// NewDestinationsHandler creates a new DestinationsHandler
func NewDestinationsHandler(destinations store.DestinationStore) *DestinationsHandler {
	return &DestinationsHandler{destinations: destinations}
}

// List handles GET /api/destinations
// @Summary List destinations
// @Tags destinations
// @Produce json
// @Success 200 {object} dto.DestinationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/destinations [get]
func (h *DestinationsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	destinations, err := h.destinations.ListDestinations(r.Context())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	items := make([]dto.DestinationResponse, 0, len(destinations))
	for i := range destinations {
		items = append(items, destinationToResponse(&destinations[i]))
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DestinationListResponse{Destinations: items})
}

// Detail handles GET /api/destinations/{destination_id}
// @Summary Get destination data including the derived daily cost
// @Tags destinations
// @Produce json
// @Param destination_id path string true "Destination ID"
// @Success 200 {object} dto.DestinationDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/destinations/{destination_id} [get]
func (h *DestinationsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/destinations/")
	destinationID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid destination id", "destination_id must be UUID")
		return
	}

	destination, err := h.destinations.GetDestination(r.Context(), destinationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Destination not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DestinationDetailResponse{
		Success:     true,
		Destination: destinationToResponse(destination),
	})
}

func destinationToResponse(d *models.Destination) dto.DestinationResponse {
	languages := d.Languages
	if languages == nil {
		languages = []string{}
	}
	return dto.DestinationResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Tagline:     d.Tagline,
		Description: d.Description,
		Type:        d.Type,
		Budget:      d.Budget,
		BestTime:    d.BestTime,
		BadTime:     d.BadTime,
		ImageURL:    d.ImageURL,
		Languages:   languages,
		DailyCost:   d.TotalDailyCost(),
	}
}
