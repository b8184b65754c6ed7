package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"WANDERINDIA_BACK-END/internal/dto"
	"WANDERINDIA_BACK-END/internal/utils"
)

// ContactHandler receives contact form messages
type ContactHandler struct {
	db *pgxpool.Pool
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(db *pgxpool.Pool) *ContactHandler {
	return &ContactHandler{db: db}
}

// Submit handles POST /api/contact
// @Summary Submit a contact form message
// @Tags contact
// @Accept json
// @Produce json
// @Param payload body dto.ContactRequest true "Message payload"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ContactRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name, email, subject, message are required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "email is invalid")
		return
	}

	_, err := h.db.Exec(context.Background(),
		`INSERT INTO contact_messages (id, name, email, subject, message, is_read, created_at)
         VALUES ($1, $2, $3, $4, $5, FALSE, $6)`,
		uuid.New(), req.Name, req.Email, req.Subject, req.Message, time.Now(),
	)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.ContactResponse{
		Success: true,
		Message: "Message sent successfully! We'll get back to you soon.",
	})
}
