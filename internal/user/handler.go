package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/cinefeed/cinefeed/internal/token"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

// Handler exposes HTTP endpoints for relational accounts
// (register / login / password change).
type Handler struct {
	svc    *UserService
	tokens *token.Manager
	logger *zap.SugaredLogger
}

func NewHandler(svc *UserService, tokens *token.Manager, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, tokens: tokens, logger: logger}
}

type registerRequest struct {
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	Password     string  `json:"password"`
	Country      string  `json:"country"`
	City         *string `json:"city"`
	Street       *string `json:"street"`
	CreationDate string  `json:"creation_date"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" || req.Country == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}

	err := h.svc.Register(r.Context(), RegisterInput{
		Email:        req.Email,
		Username:     req.Username,
		Password:     req.Password,
		Country:      req.Country,
		City:         req.City,
		Street:       req.Street,
		CreationDate: req.CreationDate,
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			utilities.WriteJSON(w, http.StatusConflict, map[string]string{"message": "User already has an account"})
			return
		}
		h.logger.Errorw("register failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"message": "Exception occurred while registering"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]string{"message": "User created"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}
	if req.Email == "" || req.Password == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}

	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			utilities.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "Incorrect email/password"})
			return
		}
		h.logger.Errorw("login failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occurred while logging in"})
		return
	}

	tok, err := h.tokens.Issue(strconv.FormatInt(u.ID, 10), u.Email, u.Username)
	if err != nil {
		h.logger.Errorw("token issue failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occurred while logging in"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]string{"token": tok, "username": u.Username})
}

type editPasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) EditPassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := token.FromContext(r.Context())
	if !ok {
		utilities.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	var req editPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Missing parameters"})
		return
	}

	err := h.svc.EditPassword(r.Context(), claims.Email, req.OldPassword, req.NewPassword)
	switch {
	case err == nil:
		utilities.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
	case errors.Is(err, ErrSamePassword):
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "New password cannot be equal to old password"})
	case errors.Is(err, ErrIncorrectPassword):
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"message": "Incorrect password"})
	default:
		h.logger.Errorw("password update failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Exception occurred while updating password"})
	}
}

// Logout acknowledges the logout. Tokens are stateless, so there is nothing
// to discard server-side; the call is idempotent.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	utilities.WriteJSON(w, http.StatusOK, map[string]string{"message": "Disconnected"})
}
