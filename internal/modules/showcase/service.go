package showcase

import (
	"context"

	"github.com/google/uuid"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// Service defines delivered-showcase business logic.
type Service interface {
	Create(ctx context.Context, req CreateDeliveredRequest) (*DeliveredComputer, error)
	Update(ctx context.Context, id string, req UpdateDeliveredRequest) (*DeliveredComputer, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	refresh func()
}

func NewService(repo Repository, refresh func()) Service {
	if refresh == nil {
		refresh = func() {}
	}
	return &service{repo: repo, refresh: refresh}
}

func (s *service) Create(ctx context.Context, req CreateDeliveredRequest) (*DeliveredComputer, error) {
	if req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if req.DeliveryDate.IsZero() {
		return nil, &apperror.ValidationError{Field: "delivery_date", Message: "required"}
	}
	d := &DeliveredComputer{
		ID:           uuid.New(),
		Name:         req.Name,
		Customer:     req.Customer,
		DeliveryDate: req.DeliveryDate,
		Location:     req.Location,
		Specs:        req.Specs,
		ImageURL:     req.ImageURL,
	}
	d.normalize()
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, &apperror.WriteError{Op: "create delivered computer", Err: err}
	}
	s.refresh()
	return d, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDeliveredRequest) (*DeliveredComputer, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, &apperror.WriteError{Op: "update delivered computer", Err: err}
	}
	s.refresh()
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, &apperror.QueryError{Op: "reload delivered computer", Err: err}
	}
	return d, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &apperror.WriteError{Op: "delete delivered computer", Err: err}
	}
	s.refresh()
	return nil
}
