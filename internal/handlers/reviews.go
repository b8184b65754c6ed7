package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"WANDERINDIA_BACK-END/internal/dto"
	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/utils"
)

// ReviewsHandler manages destination review endpoints
type ReviewsHandler struct {
	db *pgxpool.Pool
}

// NewReviewsHandler creates a new ReviewsHandler
func NewReviewsHandler(db *pgxpool.Pool) *ReviewsHandler {
	return &ReviewsHandler{db: db}
}

// CreateReview handles POST /api/reviews
// @Summary Create a review for a destination
// @Tags reviews
// @Accept json
// @Produce json
// @Param payload body dto.CreateReviewRequest true "Review payload"
// @Success 201 {object} dto.CreateReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews [post]
func (h *ReviewsHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateReviewRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.DestinationID == "" || req.Title == "" || req.Content == "" || req.VisitDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination_id, title, content, visit_date are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "rating must be between 1 and 5")
		return
	}
	switch req.RecommendedBudget {
	case "Low", "Medium", "High":
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "recommended_budget must be Low, Medium, or High")
		return
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination_id must be UUID")
		return
	}
	var tripID *uuid.UUID
	if req.TripID != "" {
		parsed, err := uuid.Parse(req.TripID)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip_id must be UUID")
			return
		}
		tripID = &parsed
	}
	visitDate, err := utils.ParseDate(req.VisitDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "visit_date must be ISO 8601 format (YYYY-MM-DD)")
		return
	}

	// One review per user per destination
	var existingID uuid.UUID
	err = h.db.QueryRow(context.Background(),
		`SELECT id FROM reviews WHERE user_id = $1 AND destination_id = $2`,
		userID, destinationID).Scan(&existingID)
	if err == nil {
		utils.WriteErrorResponse(w, http.StatusConflict, "Review already exists", "You have already reviewed this destination")
		return
	}

	review := models.Review{
		ID:                uuid.New(),
		UserID:            userID,
		DestinationID:     destinationID,
		TripID:            tripID,
		Rating:            req.Rating,
		Title:             req.Title,
		Content:           req.Content,
		Pros:              req.Pros,
		Cons:              req.Cons,
		VisitDate:         visitDate,
		TravelType:        req.TravelType,
		RecommendedBudget: req.RecommendedBudget,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	_, err = h.db.Exec(context.Background(),
		`INSERT INTO reviews (id, user_id, destination_id, trip_id, rating, title, content, pros, cons,
                 visit_date, travel_type, recommended_budget, is_verified, helpful_votes, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, FALSE, 0, $13, $14)`,
		review.ID, review.UserID, review.DestinationID, review.TripID, review.Rating, review.Title,
		review.Content, review.Pros, review.Cons, review.VisitDate, review.TravelType,
		review.RecommendedBudget, review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateReviewResponse{Review: reviewToResponse(&review)})
}

// ListByDestination handles GET /api/destinations/{destination_id}/reviews
// @Summary List reviews for a destination
// @Tags reviews
// @Produce json
// @Param destination_id path string true "Destination ID"
// @Success 200 {object} dto.ReviewListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/destinations/{destination_id}/reviews [get]
func (h *ReviewsHandler) ListByDestination(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/destinations/"), "/reviews")
	destinationID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid destination id", "destination_id must be UUID")
		return
	}

	rows, err := h.db.Query(context.Background(),
		`SELECT id, user_id, destination_id, trip_id, rating, title, content, pros, cons,
                visit_date, travel_type, recommended_budget, is_verified, helpful_votes, created_at, updated_at
           FROM reviews
          WHERE destination_id = $1
          ORDER BY created_at DESC`, destinationID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer rows.Close()

	reviews := make([]dto.ReviewResponse, 0)
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.DestinationID, &rev.TripID, &rev.Rating,
			&rev.Title, &rev.Content, &rev.Pros, &rev.Cons, &rev.VisitDate, &rev.TravelType,
			&rev.RecommendedBudget, &rev.IsVerified, &rev.HelpfulVotes, &rev.CreatedAt, &rev.UpdatedAt); err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		reviews = append(reviews, reviewToResponse(&rev))
	}
	if err := rows.Err(); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ReviewListResponse{Reviews: reviews})
}

// ReviewByID dispatches PUT/PATCH/DELETE for /api/reviews/{review_id}
func (h *ReviewsHandler) ReviewByID(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut, http.MethodPatch:
		h.UpdateReview(w, r)
	case http.MethodDelete:
		h.DeleteReview(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// UpdateReview handles PUT/PATCH /api/reviews/{review_id}
// @Summary Update one of the requester's reviews
// @Tags reviews
// @Accept json
// @Produce json
// @Param review_id path string true "Review ID"
// @Param payload body dto.UpdateReviewRequest true "Update payload"
// @Success 200 {object} dto.CreateReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews/{review_id} [put]
func (h *ReviewsHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	reviewID, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, "/api/reviews/"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid review id", "review_id must be UUID")
		return
	}

	var cur models.Review
	err = h.db.QueryRow(context.Background(),
		`SELECT id, user_id, destination_id, trip_id, rating, title, content, pros, cons,
                visit_date, travel_type, recommended_budget, is_verified, helpful_votes, created_at, updated_at
           FROM reviews WHERE id = $1`, reviewID).Scan(
		&cur.ID, &cur.UserID, &cur.DestinationID, &cur.TripID, &cur.Rating, &cur.Title, &cur.Content,
		&cur.Pros, &cur.Cons, &cur.VisitDate, &cur.TravelType, &cur.RecommendedBudget,
		&cur.IsVerified, &cur.HelpfulVotes, &cur.CreatedAt, &cur.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Review not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	if cur.UserID != requesterID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the author can update this review")
		return
	}

	var req dto.UpdateReviewRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "rating must be between 1 and 5")
			return
		}
		cur.Rating = *req.Rating
	}
	if req.Title != nil {
		cur.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		cur.Content = *req.Content
	}
	if req.Pros != nil {
		cur.Pros = *req.Pros
	}
	if req.Cons != nil {
		cur.Cons = *req.Cons
	}
	if req.RecommendedBudget != nil {
		switch *req.RecommendedBudget {
		case "Low", "Medium", "High":
			cur.RecommendedBudget = *req.RecommendedBudget
		default:
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "recommended_budget must be Low, Medium, or High")
			return
		}
	}
	cur.UpdatedAt = time.Now()

	_, err = h.db.Exec(context.Background(),
		`UPDATE reviews
            SET rating = $1,
                title = $2,
                content = $3,
                pros = $4,
                cons = $5,
                recommended_budget = $6,
                updated_at = $7
          WHERE id = $8`,
		cur.Rating, cur.Title, cur.Content, cur.Pros, cur.Cons, cur.RecommendedBudget, cur.UpdatedAt, cur.ID,
	)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.CreateReviewResponse{Review: reviewToResponse(&cur)})
}

// DeleteReview handles DELETE /api/reviews/{review_id}
// @Summary Delete one of the requester's reviews
// @Tags reviews
// @Produce json
// @Param review_id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews/{review_id} [delete]
func (h *ReviewsHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	reviewID, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, "/api/reviews/"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid review id", "review_id must be UUID")
		return
	}

	var authorID uuid.UUID
	if err := h.db.QueryRow(context.Background(), `SELECT user_id FROM reviews WHERE id = $1`, reviewID).Scan(&authorID); err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Review not found")
		return
	}
	if authorID != requesterID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the author can delete this review")
		return
	}

	if _, err := h.db.Exec(context.Background(), `DELETE FROM reviews WHERE id = $1`, reviewID); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}

func reviewToResponse(rev *models.Review) dto.ReviewResponse {
	resp := dto.ReviewResponse{
		ID:                rev.ID.String(),
		UserID:            rev.UserID.String(),
		DestinationID:     rev.DestinationID.String(),
		Rating:            rev.Rating,
		Title:             rev.Title,
		Content:           rev.Content,
		Pros:              rev.Pros,
		Cons:              rev.Cons,
		VisitDate:         utils.FormatDate(rev.VisitDate),
		TravelType:        rev.TravelType,
		RecommendedBudget: rev.RecommendedBudget,
		IsVerified:        rev.IsVerified,
		HelpfulVotes:      rev.HelpfulVotes,
		CreatedAt:         utils.FormatTimestamp(rev.CreatedAt),
		UpdatedAt:         utils.FormatTimestamp(rev.UpdatedAt),
	}
	if rev.TripID != nil {
		resp.TripID = rev.TripID.String()
	}
	return resp
}
