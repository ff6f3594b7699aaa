package upload

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// 10 MiB cap on the raw upload before decoding.
const maxUploadBytes = 10 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *chi.Mux, admin func(http.Handler) http.Handler) {
	r.Route("/api/v1/uploads", func(r chi.Router) {
		r.Use(admin)
		r.Post("/", h.upload)
	})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		apperror.Write(w, &apperror.ValidationError{Field: "body", Message: "invalid multipart form"})
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		apperror.Write(w, &apperror.ValidationError{Field: "file", Message: "missing file field"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		apperror.Write(w, &apperror.WriteError{Op: "read upload", Err: err})
		return
	}
	if len(data) > maxUploadBytes {
		apperror.Write(w, &apperror.ValidationError{Field: "file", Message: "file exceeds the 10MB limit"})
		return
	}

	url, err := h.service.StoreImage(r.Context(), data)
	if err != nil {
		apperror.Write(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]string{"url": url})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
