package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/usecase"
)

type LoginHistoryHandler struct {
	RecordUC *usecase.RecordLoginUseCase
	Repo     entity.LoginHistoryRepositoryInterface
}

func NewLoginHistoryHandler(recordUC *usecase.RecordLoginUseCase, repo entity.LoginHistoryRepositoryInterface) *LoginHistoryHandler {
	return &LoginHistoryHandler{
		RecordUC: recordUC,
		Repo:     repo,
	}
}

type recordLoginRequest struct {
	UserID string `json:"userId"`
}

func (h *LoginHistoryHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var req recordLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	err := h.RecordUC.Execute(r.Context(), req.UserID, r.UserAgent(), getClientIP(r))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *LoginHistoryHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		http.Error(w, "query param 'user' é obrigatório", http.StatusBadRequest)
		return
	}

	entries, err := h.Repo.FindByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []entity.LoginHistory{}
	}
	respondJSON(w, http.StatusOK, entries)
}
