package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gestorx/vendas-api/internal/entity"
)

type UserHandler struct {
	Repo entity.UserRepositoryInterface
}

func NewUserHandler(repo entity.UserRepositoryInterface) *UserHandler {
	return &UserHandler{Repo: repo}
}

type userForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var form userForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := entity.NewUser(form.Name, form.Email, form.Role)
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Repo.Create(r.Context(), user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.FindAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []entity.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			http.Error(w, "Usuário não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var form userForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	user.Name = form.Name
	user.Email = form.Email
	if form.Role != "" {
		user.Role = form.Role
	}
	user.UpdatedAt = time.Now()

	if err := h.Repo.Update(r.Context(), user); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// HandleDeactivate é o soft-delete de usuário: sai das listagens de
// vendedores ativos sem quebrar as vendas antigas que apontam para ele.
func (h *UserHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			http.Error(w, "Usuário não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
