package handlers

import (
	"net/http"

	"github.com/gestorx/vendas-api/internal/usecase"
)

type DashboardHandler struct {
	Dashboard *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboard *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

func (h *DashboardHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Dashboard.Metrics(r.Context())
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

func (h *DashboardHandler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.Dashboard.Series(r.Context())
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, series)
}
