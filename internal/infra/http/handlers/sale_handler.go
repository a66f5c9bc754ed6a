package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/infra/http/middleware"
	"github.com/gestorx/vendas-api/internal/insights"
	"github.com/gestorx/vendas-api/internal/usecase"
)

type SaleHandler struct {
	CreateSaleUC *usecase.CreateSaleUseCase
	UpdateSaleUC *usecase.UpdateSaleUseCase
	ListSalesUC  *usecase.ListSalesUseCase
	Repo         entity.SaleRepositoryInterface
}

func NewSaleHandler(
	createUC *usecase.CreateSaleUseCase,
	updateUC *usecase.UpdateSaleUseCase,
	listUC *usecase.ListSalesUseCase,
	repo entity.SaleRepositoryInterface,
) *SaleHandler {
	return &SaleHandler{
		CreateSaleUC: createUC,
		UpdateSaleUC: updateUC,
		ListSalesUC:  listUC,
		Repo:         repo,
	}
}

func (h *SaleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.CreateSaleUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordSaleCreated(output.Stage)
	respondJSON(w, http.StatusCreated, output)
}

// HandleList aplica os filtros vindos da query string sobre o snapshot.
// Resultado vazio é 200 com lista vazia, nunca erro.
func (h *SaleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := insights.Filters{
		Stage:         q.Get("stage"),
		Vendedor:      q.Get("vendedor"),
		ProductType:   q.Get("produto"),
		ContactMethod: q.Get("contato"),
		Type:          q.Get("tipo"),
		StartDate:     q.Get("inicio"),
		EndDate:       q.Get("fim"),
	}

	sales, err := h.ListSalesUC.Execute(r.Context(), filters)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	if sales == nil {
		sales = []entity.Sale{}
	}
	respondJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sale, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			http.Error(w, "Venda não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input usecase.SaleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.UpdateSaleUC.Execute(r.Context(), id, input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordStageTransition(output.Stage)
	respondJSON(w, http.StatusOK, output)
}

func (h *SaleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			http.Error(w, "Venda não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
