package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestorx/vendas-api/internal/entity"
)

type NotificationHandler struct {
	Repo entity.NotificationRepositoryInterface
}

func NewNotificationHandler(repo entity.NotificationRepositoryInterface) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

func (h *NotificationHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		http.Error(w, "query param 'user' é obrigatório", http.StatusBadRequest)
		return
	}

	notifications, err := h.Repo.FindByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if notifications == nil {
		notifications = []entity.Notification{}
	}
	respondJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.MarkRead(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotificationNotFound) {
			http.Error(w, "Notificação não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"read": true})
}

func (h *NotificationHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotificationNotFound) {
			http.Error(w, "Notificação não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
