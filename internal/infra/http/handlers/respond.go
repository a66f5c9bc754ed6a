package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gestorx/vendas-api/internal/usecase"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondUseCaseError traduz a taxonomia do usecase para status HTTP:
// erro de domínio é culpa do pedido (4xx), erro técnico é culpa nossa (5xx).
func respondUseCaseError(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
