package movie

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/cinefeed/cinefeed/internal/token"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

// Handler exposes the read-only movie catalog endpoints.
type Handler struct {
	svc    *MovieService
	logger *zap.SugaredLogger
}

func NewHandler(svc *MovieService, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// List returns all movies grouped by type, or a single category ordered by
// release date when the `category` query parameter is present.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		movies, err := h.svc.ListByCategory(r.Context(), category)
		if err != nil {
			h.logger.Errorw("fetch movies by category failed", "category", category, "err", err)
			utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occured while fetching movies"})
			return
		}
		utilities.WriteJSON(w, http.StatusOK, map[string]any{"movies": movies})
		return
	}

	grouped, err := h.svc.ListGrouped(r.Context())
	if err != nil {
		h.logger.Errorw("fetch movies failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occured while fetching movies"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]any{"movies": grouped})
}

func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	movies, err := h.svc.ListTopRated(r.Context())
	if err != nil {
		h.logger.Errorw("fetch top rated movies failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occured while fetching top rated movies"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]any{"movies": movies})
}

func (h *Handler) Seen(w http.ResponseWriter, r *http.Request) {
	claims, ok := token.FromContext(r.Context())
	if !ok {
		utilities.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}
	movies, err := h.svc.ListSeen(r.Context(), claims.Email)
	if err != nil {
		h.logger.Errorw("fetch seen movies failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occured while fetching seen movies"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]any{"movies": movies})
}
