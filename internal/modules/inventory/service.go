package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// Service defines inventory business logic. MarkAsSold is a thin
// wrapper over a one-field partial update.
type Service interface {
	Create(ctx context.Context, req CreateComputerRequest) (*Computer, error)
	Update(ctx context.Context, id string, req UpdateComputerRequest) (*Computer, error)
	MarkAsSold(ctx context.Context, id string) (*Computer, error)
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

func (s *service) Create(ctx context.Context, req CreateComputerRequest) (*Computer, error) {
	if req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, &apperror.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	c := &Computer{
		ID:              uuid.New(),
		Name:            req.Name,
		Price:           req.Price,
		GPU:             req.GPU,
		CPU:             req.CPU,
		RAM:             req.RAM,
		Storage:         req.Storage,
		Motherboard:     req.Motherboard,
		Cooler:          req.Cooler,
		Watercooler:     req.Watercooler,
		BorderColor:     req.BorderColor,
		ImageURL:        req.ImageURL,
		SecondaryImages: req.SecondaryImages,
	}
	c.normalize()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, &apperror.WriteError{Op: "create inventory computer", Err: err}
	}
	s.refresh()
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateComputerRequest) (*Computer, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if req.Price != nil && req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, &apperror.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, &apperror.WriteError{Op: "update inventory computer", Err: err}
	}
	s.refresh()
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, &apperror.QueryError{Op: "reload inventory computer", Err: err}
	}
	return c, nil
}

func (s *service) MarkAsSold(ctx context.Context, id string) (*Computer, error) {
	sold := true
	return s.Update(ctx, id, UpdateComputerRequest{Sold: &sold})
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &apperror.WriteError{Op: "delete inventory computer", Err: err}
	}
	s.refresh()
	return nil
}
