package handlers

import (
	"net/http"

	"github.com/gestorx/vendas-api/internal/insights"
	"github.com/gestorx/vendas-api/internal/usecase"
)

// CustomerHandler serve a visão derivada de clientes. Cliente não é coleção
// no banco: cada venda vira uma linha, com status calculado.
type CustomerHandler struct {
	ListCustomersUC *usecase.ListCustomersUseCase
}

func NewCustomerHandler(listUC *usecase.ListCustomersUseCase) *CustomerHandler {
	return &CustomerHandler{ListCustomersUC: listUC}
}

func (h *CustomerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.ListCustomersUC.Execute(r.Context())
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	if customers == nil {
		customers = []insights.Customer{}
	}
	respondJSON(w, http.StatusOK, customers)
}
