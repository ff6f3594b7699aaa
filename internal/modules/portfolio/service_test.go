package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

type fakeRepo struct {
	sold map[string]SoldComputer
}

func newFakeRepo() *fakeRepo { return &fakeRepo{sold: map[string]SoldComputer{}} }

func (f *fakeRepo) List(ctx context.Context) ([]SoldComputer, error) {
	out := []SoldComputer{}
	for _, s := range f.sold {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*SoldComputer, error) {
	s, ok := f.sold[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &s, nil
}

func (f *fakeRepo) Create(ctx context.Context, s *SoldComputer) error {
	f.sold[s.ID.String()] = *s
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, req UpdateSoldRequest) error {
	s, ok := f.sold[id]
	if !ok {
		return apperror.ErrNotFound
	}
	if req.Customer != nil {
		s.Customer = *req.Customer
	}
	if req.BorderColor != nil {
		s.BorderColor = *req.BorderColor
	}
	f.sold[id] = s
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.sold[id]; !ok {
		return apperror.ErrNotFound
	}
	delete(f.sold, id)
	return nil
}

func TestCreateRequiresSoldDate(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	_, err := svc.Create(context.Background(), CreateSoldRequest{Name: "STREAMER MAX"})
	var ve *apperror.ValidationError
	if !errors.As(err, &ve) || ve.Field != "sold_date" {
		t.Fatalf("err = %v, want sold_date validation error", err)
	}
}

func TestCreateNormalizesSpecs(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	s, err := svc.Create(context.Background(), CreateSoldRequest{
		Name:        "STREAMER MAX",
		Customer:    "Maria",
		SoldDate:    time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Location:    "São Paulo - SP",
		BorderColor: "#7c3aed",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Specs == nil {
		t.Fatal("specs must never be nil")
	}
}

func TestUpdateTouchesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRepo()
	var refreshed int
	svc := NewService(repo, func() { refreshed++ })
	seeded, err := svc.Create(context.Background(), CreateSoldRequest{
		Name:     "STREAMER MAX",
		Customer: "Maria",
		SoldDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		Location: "São Paulo - SP",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	color := "#f59e0b"
	got, err := svc.Update(context.Background(), seeded.ID.String(), UpdateSoldRequest{BorderColor: &color})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.BorderColor != color {
		t.Fatalf("border color = %q, want %q", got.BorderColor, color)
	}
	if got.Customer != "Maria" || got.Location != "São Paulo - SP" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if refreshed != 2 {
		t.Fatalf("refresh count = %d, want 2 (create + update)", refreshed)
	}
}

func TestDeleteMissingReportsNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	err := svc.Delete(context.Background(), "c9d1e2f3-0000-0000-0000-000000000000")
	var we *apperror.WriteError
	if !errors.As(err, &we) || !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want WriteError wrapping not-found", err)
	}
}
