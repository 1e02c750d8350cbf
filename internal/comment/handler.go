package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/cinefeed/cinefeed/pkg/utilities"
)

type Handler struct {
	svc    *CommentService
	logger *zap.SugaredLogger
}

func NewHandler(svc *CommentService, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type addRequest struct {
	Rating   *float64 `json:"rating"`
	Username string   `json:"username"`
	Comment  string   `json:"comment"`
	Title    string   `json:"title"`
}

// Add handles POST /comments/{movie_id}; every field is required.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(r.PathValue("movie_id"), 10, 64)

	var req addRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}
	if err != nil || req.Rating == nil || *req.Rating == 0 ||
		req.Username == "" || req.Comment == "" || req.Title == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}

	doc := &Comment{
		MovieID:  movieID,
		Rating:   *req.Rating,
		Username: req.Username,
		Comment:  req.Comment,
		Title:    req.Title,
	}
	if err := h.svc.Add(r.Context(), doc); err != nil {
		h.logger.Errorw("add comment failed", "movie_id", movieID, "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occurred while adding comment"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]string{"message": "Comment added"})
}

// GetByMovie handles GET /comments/{movie_id}.
func (h *Handler) GetByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(r.PathValue("movie_id"), 10, 64)
	if err != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "movie id missing"})
		return
	}

	comments, err := h.svc.ListByMovie(r.Context(), movieID)
	if err != nil {
		h.logger.Errorw("fetch comments failed", "movie_id", movieID, "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occured while fetching comments"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]any{"comments": comments})
}
