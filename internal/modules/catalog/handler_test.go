package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dev-guime/arcade-backend/internal/provider"
)

func passthrough(next http.Handler) http.Handler { return next }

func newTestHandler(t *testing.T, repo Repository) (*chi.Mux, *provider.Collection[Computer]) {
	t.Helper()
	cache := provider.NewCollection("computers", repo.List)
	if err := cache.Load(context.Background()); err != nil {
		t.Fatalf("initial load: %v", err)
	}
	t.Cleanup(cache.Close)
	svc := NewService(repo, cache.Refresh)
	router := chi.NewRouter()
	NewHandler(svc, cache, nil).RegisterRoutes(router, passthrough)
	return router, cache
}

func TestListServesSnapshot(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	if _, err := svc.Create(context.Background(), CreateComputerRequest{
		Name: "GAMER PRO", Price: decimal.NewFromInt(3799), Category: "Linha Performance",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router, _ := newTestHandler(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/computers", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Computers) != 1 || body.Computers[0].Name != "GAMER PRO" {
		t.Fatalf("computers = %+v", body.Computers)
	}
	if body.Loading {
		t.Fatal("loading should be false after the initial fetch")
	}
}

func TestListFiltersByPersistedCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	seed := []CreateComputerRequest{
		{Name: "ENTRADA", Price: decimal.NewFromInt(2400), Category: "Linha Essencial"},
		{Name: "GAMER PRO", Price: decimal.NewFromInt(3799), Category: "Linha Performance"},
	}
	for _, req := range seed {
		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	router, _ := newTestHandler(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/catalog/computers?category=Linha+Performance", nil))
	var body listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Computers) != 1 || body.Computers[0].Name != "GAMER PRO" {
		t.Fatalf("filtered = %+v", body.Computers)
	}
}

func TestListFieldsEncodeAsEmptyArrays(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	if _, err := svc.Create(context.Background(), CreateComputerRequest{
		Name: "GAMER PRO", Price: decimal.NewFromInt(3799),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	router, _ := newTestHandler(t, repo)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/computers", nil))
	if strings.Contains(rec.Body.String(), `"specs":null`) ||
		strings.Contains(rec.Body.String(), `"secondary_images":null`) {
		t.Fatalf("list fields serialized as null: %s", rec.Body.String())
	}
}

func TestCreateEndpoint(t *testing.T) {
	router, cache := newTestHandler(t, newFakeRepo())

	payload := `{"name":"GAMER PRO","price":"3799","category":"Linha Performance","highlight":true}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/v1/catalog/computers", strings.NewReader(payload)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created Computer
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected a server-assigned id")
	}
	_ = cache
}

func TestCreateEndpointRejectsInvalidBody(t *testing.T) {
	router, _ := newTestHandler(t, newFakeRepo())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/v1/catalog/computers", strings.NewReader("{not json")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDeleteMissingEndpointReturns404(t *testing.T) {
	router, _ := newTestHandler(t, newFakeRepo())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete,
		"/api/v1/catalog/computers/b2f4a6c8-0000-0000-0000-000000000000", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
