package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gestorx/vendas-api/internal/entity"
	"github.com/gestorx/vendas-api/internal/infra/http/middleware"
	"github.com/gestorx/vendas-api/internal/usecase"
)

type ProspectionHandler struct {
	CaptureUC   *usecase.CaptureProspectionUseCase
	ConvertUC   *usecase.ConvertProspectionUseCase
	Repo        entity.ProspectionRepositoryInterface
	rateLimiter *RateLimiter
}

func NewProspectionHandler(
	captureUC *usecase.CaptureProspectionUseCase,
	convertUC *usecase.ConvertProspectionUseCase,
	repo entity.ProspectionRepositoryInterface,
) *ProspectionHandler {
	return &ProspectionHandler{
		CaptureUC:   captureUC,
		ConvertUC:   convertUC,
		Repo:        repo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

// HandleCapture é o endpoint público de captação (formulário do site), por
// isso é o único com rate limit por IP.
func (h *ProspectionHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		respondJSON(w, http.StatusTooManyRequests, map[string]string{
			"error": "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.ProspectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.CaptureUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, output)
}

func (h *ProspectionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	prospections, err := h.Repo.FindAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if prospections == nil {
		prospections = []entity.Prospection{}
	}
	respondJSON(w, http.StatusOK, prospections)
}

func (h *ProspectionHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	var input usecase.ConvertProspectionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	input.ProspectionID = chi.URLParam(r, "id")

	output, err := h.ConvertUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordProspectionConverted()
	respondJSON(w, http.StatusCreated, output)
}

func (h *ProspectionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrProspectionNotFound) {
			http.Error(w, "Prospecção não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
