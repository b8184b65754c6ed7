package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"WANDERINDIA_BACK-END/internal/dto"
	"WANDERINDIA_BACK-END/internal/models"
	"WANDERINDIA_BACK-END/internal/utils"
)

// VlogsHandler serves travel vlog endpoints. Media uploads are handled by an
// external service; only metadata and counters live here.
type VlogsHandler struct {
	db *pgxpool.Pool
}

// NewVlogsHandler creates a new VlogsHandler
func NewVlogsHandler(db *pgxpool.Pool) *VlogsHandler {
	return &VlogsHandler{db: db}
}

const vlogColumns = `id, title, description, destination_id, type, author_id, thumbnail, video_url,
       duration, views, likes, tags, featured, upload_date`

// List handles GET /api/vlogs
// @Summary List travel vlogs, newest first
// @Tags vlogs
// @Produce json
// @Success 200 {object} dto.VlogListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/vlogs [get]
func (h *VlogsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rows, err := h.db.Query(context.Background(),
		`SELECT `+vlogColumns+` FROM travel_vlogs ORDER BY upload_date DESC, id DESC`)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer rows.Close()

	vlogs := make([]dto.VlogResponse, 0)
	for rows.Next() {
		var v models.TravelVlog
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.DestinationID, &v.Type, &v.AuthorID,
			&v.Thumbnail, &v.VideoURL, &v.Duration, &v.Views, &v.Likes, &v.Tags, &v.Featured, &v.UploadDate); err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		vlogs = append(vlogs, vlogToResponse(&v))
	}
	if err := rows.Err(); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.VlogListResponse{Vlogs: vlogs})
}

// VlogByID dispatches for /api/vlogs/{vlog_id}
func (h *VlogsHandler) VlogByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.Detail(w, r)
}

// Detail handles GET /api/vlogs/{vlog_id}. Reading a vlog counts as a view;
// the counter is bumped atomically in the same statement that loads the row
// so concurrent reads never lose updates.
// @Summary Get a vlog and count the view
// @Tags vlogs
// @Produce json
// @Param vlog_id path string true "Vlog ID"
// @Success 200 {object} dto.VlogDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/vlogs/{vlog_id} [get]
func (h *VlogsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	vlogID, err := uuid.Parse(strings.TrimPrefix(r.URL.Path, "/api/vlogs/"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid vlog id", "vlog_id must be UUID")
		return
	}

	var v models.TravelVlog
	err = h.db.QueryRow(context.Background(),
		`UPDATE travel_vlogs SET views = views + 1 WHERE id = $1 RETURNING `+vlogColumns, vlogID).Scan(
		&v.ID, &v.Title, &v.Description, &v.DestinationID, &v.Type, &v.AuthorID,
		&v.Thumbnail, &v.VideoURL, &v.Duration, &v.Views, &v.Likes, &v.Tags, &v.Featured, &v.UploadDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Vlog not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.VlogDetailResponse{Vlog: vlogToResponse(&v)})
}

// Like handles POST /api/vlogs/{vlog_id}/like with an atomic counter increment
// @Summary Like a vlog
// @Tags vlogs
// @Produce json
// @Param vlog_id path string true "Vlog ID"
// @Success 200 {object} dto.LikeVlogResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/vlogs/{vlog_id}/like [post]
func (h *VlogsHandler) Like(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	idStr := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/vlogs/"), "/like")
	vlogID, err := uuid.Parse(idStr)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid vlog id", "vlog_id must be UUID")
		return
	}

	var likes int
	err = h.db.QueryRow(context.Background(),
		`UPDATE travel_vlogs SET likes = likes + 1 WHERE id = $1 RETURNING likes`, vlogID).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Vlog not found")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LikeVlogResponse{Success: true, Likes: likes})
}

func vlogToResponse(v *models.TravelVlog) dto.VlogResponse {
	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.VlogResponse{
		ID:            v.ID.String(),
		Title:         v.Title,
		Description:   v.Description,
		DestinationID: v.DestinationID.String(),
		Type:          v.Type,
		AuthorID:      v.AuthorID.String(),
		Thumbnail:     v.Thumbnail,
		VideoURL:      v.VideoURL,
		Duration:      v.Duration,
		Views:         v.Views,
		Likes:         v.Likes,
		Tags:          tags,
		Featured:      v.Featured,
		UploadDate:    utils.FormatDate(v.UploadDate),
	}
}
