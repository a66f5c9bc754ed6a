package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gestorx/vendas-api/internal/entity"
)

type ProductHandler struct {
	Repo entity.ProductRepositoryInterface
}

func NewProductHandler(repo entity.ProductRepositoryInterface) *ProductHandler {
	return &ProductHandler{Repo: repo}
}

type productForm struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	PriceCents  int    `json:"price_cents"`
	Description string `json:"description"`
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var form productForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	product, err := entity.NewProduct(form.Name, form.Category, form.Description, form.PriceCents)
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Repo.Create(r.Context(), product); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repo.FindAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if products == nil {
		products = []entity.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			http.Error(w, "Produto não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var form productForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	product.Name = form.Name
	product.Category = form.Category
	product.PriceCents = form.PriceCents
	product.Description = form.Description
	product.UpdatedAt = time.Now()

	if err := h.Repo.Update(r.Context(), product); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			http.Error(w, "Produto não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
