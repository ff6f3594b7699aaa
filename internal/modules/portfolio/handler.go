package portfolio

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dev-guime/arcade-backend/internal/apperror"
	"github.com/dev-guime/arcade-backend/internal/provider"
)

// Handler exposes the admin sold-computer portfolio endpoints.
type Handler struct {
	service Service
	cache   *provider.Collection[SoldComputer]
	loading func() bool
}

func NewHandler(service Service, cache *provider.Collection[SoldComputer], loading func() bool) *Handler {
	if loading == nil {
		loading = func() bool { return false }
	}
	return &Handler{service: service, cache: cache, loading: loading}
}

func (h *Handler) RegisterRoutes(r *chi.Mux, admin func(http.Handler) http.Handler) {
	r.Route("/api/v1/admin/portfolio", func(r chi.Router) {
		r.Use(admin)
		r.Get("/sold", h.list)
		r.Post("/sold", h.create)
		r.Put("/sold/{id}", h.update)
		r.Delete("/sold/{id}", h.delete)
	})
}

type listResponse struct {
	Loading bool           `json:"loading"`
	Sold    []SoldComputer `json:"sold"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, listResponse{Loading: h.loading(), Sold: h.cache.Snapshot()})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateSoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.Write(w, &apperror.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}
	sc, err := h.service.Create(r.Context(), req)
	if err != nil {
		apperror.Write(w, err)
		return
	}
	respond(w, http.StatusCreated, sc)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateSoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.Write(w, &apperror.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}
	sc, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		apperror.Write(w, err)
		return
	}
	respond(w, http.StatusOK, sc)
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
