package message

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/cinefeed/cinefeed/internal/token"
	"github.com/cinefeed/cinefeed/pkg/utilities"
)

type Handler struct {
	svc    *MessageService
	logger *zap.SugaredLogger
}

func NewHandler(svc *MessageService, logger *zap.SugaredLogger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.List(r.Context())
	if err != nil {
		h.logger.Errorw("list messages failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error while getting messages"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, messages)
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("messageId")
	doc, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			utilities.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Message not found"})
			return
		}
		h.logger.Errorw("get message failed", "id", id, "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Error while getting message"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, doc)
}

type addRequest struct {
	Message struct {
		Name string `json:"name"`
	} `json:"message"`
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := token.FromContext(r.Context())
	if !ok {
		utilities.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message.Name == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "missing information"})
		return
	}

	doc, err := h.svc.Add(r.Context(), claims.UserID, req.Message.Name)
	if err != nil {
		h.logger.Errorw("add message failed", "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to add message"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, doc)
}

type editRequest struct {
	Name string `json:"name"`
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("messageId")

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || id == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "missing information"})
		return
	}

	doc, err := h.svc.Edit(r.Context(), id, req.Name)
	if err != nil {
		h.logger.Errorw("edit message failed", "id", id, "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update message"})
		return
	}
	// doc is null when the id matched nothing; that is not distinguished
	// from a successful update.
	utilities.WriteJSON(w, http.StatusOK, doc)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("messageId")
	if id == "" {
		utilities.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "missing information"})
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.logger.Errorw("delete message failed", "id", id, "err", err)
		utilities.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete message"})
		return
	}
	utilities.WriteJSON(w, http.StatusOK, map[string]string{"message": "Message deleted"})
}
