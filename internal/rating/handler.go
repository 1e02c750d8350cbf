package rating

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/cinefeed/cinefeed/internal/token"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

type Handler struct {
	svc    *RatingService
	logger *zap.SugaredLogger
}

func NewHandler(svc *RatingService, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type addRequest struct {
	Rating *float64 `json:"rating"`
}

// Add handles POST /ratings/{movieId}. The movie id must be numeric and the
// rating value present; no upper-bound check happens here.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := token.FromContext(r.Context())
	if !ok {
		utilities.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	movieID, err := strconv.ParseInt(r.PathValue("movieId"), 10, 64)

	var req addRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}
	if err != nil || req.Rating == nil || *req.Rating == 0 {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}

	if err := h.svc.Add(r.Context(), claims.Email, movieID, *req.Rating); err != nil {
		h.logger.Errorw("add rating failed", "movie_id", movieID, "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occurred while adding rating"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]string{"message": "Rating added"})
}
