package handlers

import (
	"context"
	"net/http"
	"time"

	"WANDERINDIA_BACK-END/internal/dto"
	"WANDERINDIA_BACK-END/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

// serviceName identifies this backend in health payloads so probes hitting
// several services behind one gateway can tell the responses apart
const serviceName = "wanderindia-backend"

const readinessTimeout = 3 * time.Second

// HealthHandler answers liveness and readiness probes
type HealthHandler struct {
	db *pgxpool.Pool
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck handles basic health check (no database)
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: serviceName,
	})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "alive",
		Service: serviceName,
	})
}

// ReadinessCheck handles readiness check (includes database connectivity)
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Service: serviceName,
			Details: map[string]any{"db": err.Error()},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Service: serviceName,
		Details: map[string]any{"db": "ok"},
	})
}
