package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dev-guime/arcade-backend/internal/apperror"
	"github.com/dev-guime/arcade-backend/internal/provider"
)

// Handler exposes catalog HTTP endpoints. Public reads are served from
// the provider snapshot; writes go through the service and trigger a
// re-fetch.
type Handler struct {
	service Service
	cache   *provider.Collection[Computer]
	loading func() bool
}

func NewHandler(service Service, cache *provider.Collection[Computer], loading func() bool) *Handler {
	if loading == nil {
		loading = func() bool { return false }
	}
	return &Handler{service: service, cache: cache, loading: loading}
}

func (h *Handler) RegisterRoutes(r *chi.Mux, admin func(http.Handler) http.Handler) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/computers", h.list)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/computers", h.create)
			r.Put("/computers/{id}", h.update)
			r.Delete("/computers/{id}", h.delete)
		})
	})
}

type listResponse struct {
	Loading   bool       `json:"loading"`
	Computers []Computer `json:"computers"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items := h.cache.Snapshot()
	// The category column is the one source of truth for grouping;
	// filtering happens here, not by price thresholds.
	if category := r.URL.Query().Get("category"); category != "" {
		filtered := []Computer{}
		for _, c := range items {
			if c.Category == category {
				filtered = append(filtered, c)
			}
		}
		items = filtered
	}
	respond(w, http.StatusOK, listResponse{Loading: h.loading(), Computers: items})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateComputerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.Write(w, &apperror.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}
	c, err := h.service.Create(r.Context(), req)
	if err != nil {
		apperror.Write(w, err)
		return
	}
	respond(w, http.StatusCreated, c)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateComputerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.Write(w, &apperror.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}
	c, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		apperror.Write(w, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		apperror.Write(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
