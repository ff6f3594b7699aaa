package showcase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

type fakeRepo struct {
	delivered map[string]DeliveredComputer
}

func newFakeRepo() *fakeRepo { return &fakeRepo{delivered: map[string]DeliveredComputer{}} }

func (f *fakeRepo) List(ctx context.Context) ([]DeliveredComputer, error) {
	out := []DeliveredComputer{}
	for _, d := range f.delivered {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*DeliveredComputer, error) {
	d, ok := f.delivered[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &d, nil
}

func (f *fakeRepo) Create(ctx context.Context, d *DeliveredComputer) error {
	f.delivered[d.ID.String()] = *d
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, req UpdateDeliveredRequest) error {
	d, ok := f.delivered[id]
	if !ok {
		return apperror.ErrNotFound
	}
	if req.Customer != nil {
		d.Customer = *req.Customer
	}
	if req.Location != nil {
		d.Location = *req.Location
	}
	f.delivered[id] = d
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.delivered[id]; !ok {
		return apperror.ErrNotFound
	}
	delete(f.delivered, id)
	return nil
}

func TestCreateRequiresDeliveryDate(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	_, err := svc.Create(context.Background(), CreateDeliveredRequest{Name: "GAMER PRO"})
	var ve *apperror.ValidationError
	if !errors.As(err, &ve) || ve.Field != "delivery_date" {
		t.Fatalf("err = %v, want delivery_date validation error", err)
	}
}

func TestCreateNormalizesSpecs(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	d, err := svc.Create(context.Background(), CreateDeliveredRequest{
		Name:         "GAMER PRO",
		Customer:     "João",
		DeliveryDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Location:     "Curitiba - PR",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.Specs == nil {
		t.Fatal("specs must never be nil")
	}
}

func TestDeleteMissingLeavesCollectionUnchanged(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	seeded, err := svc.Create(context.Background(), CreateDeliveredRequest{
		Name:         "GAMER PRO",
		DeliveryDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	err = svc.Delete(context.Background(), "b2f4a6c8-0000-0000-0000-000000000000")
	var we *apperror.WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v, want WriteError", err)
	}
	after, _ := repo.List(context.Background())
	if len(after) != 1 || after[0].ID != seeded.ID {
		t.Fatalf("collection changed after failed delete: %+v", after)
	}
}
