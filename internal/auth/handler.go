package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/cinefeed/cinefeed/internal/token"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

// Handler exposes the document-store signup/signin endpoints plus the
// authenticated profile fetch and logout.
type Handler struct {
	svc    *AuthService
	tokens *token.Manager
	logger *zap.SugaredLogger
}

func NewHandler(svc *AuthService, tokens *token.Manager, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, tokens: tokens, logger: logger}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "missing information"})
		return
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "missing information"})
		return
	}

	account, err := h.svc.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			utilities.WriteJSON(w, http.StatusConflict, map[string]string{"message": "email already registered"})
			return
		}
		h.logger.Errorw("signup failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"message": "failed to save user"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, account)
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "missing information"})
		return
	}
	if req.Email == "" || req.Password == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "missing information"})
		return
	}

	account, err := h.svc.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "User not found"})
		case errors.Is(err, ErrBadCredentials):
			utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Email or password don't match"})
		default:
			h.logger.Errorw("signin failed", "err", err)
			utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to get user"})
		}
		return
	}

	tok, err := h.tokens.Issue(account.ID, account.Email, account.Username)
	if err != nil {
		h.logger.Errorw("token issue failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to get user"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]string{"token": tok})
}

// Me returns the caller's account, password excluded, messages populated.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := token.FromContext(r.Context())
	if !ok {
		utilities.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utilities.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
			return
		}
		h.logger.Errorw("profile fetch failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to get user"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, profile)
}

// Logout is idempotent; tokens are stateless so there is nothing to clear.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	utilities.WriteJSON(w, http.StatusOK, map[string]string{"message": "Disconnected"})
}
