package peripheral

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// Service defines peripheral business logic.
type Service interface {
	Create(ctx context.Context, req CreatePeripheralRequest) (*Peripheral, error)
	Update(ctx context.Context, id string, req UpdatePeripheralRequest) (*Peripheral, error)
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

func (s *service) Create(ctx context.Context, req CreatePeripheralRequest) (*Peripheral, error) {
	if req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, &apperror.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	p := &Peripheral{
		ID:              uuid.New(),
		Name:            req.Name,
		Price:           req.Price,
		Category:        req.Category,
		Description:     req.Description,
		Specs:           req.Specs,
		Highlight:       req.Highlight,
		HighlightLabel:  req.HighlightLabel,
		HighlightColor:  req.HighlightColor,
		ImageURL:        req.ImageURL,
		SecondaryImages: req.SecondaryImages,
	}
	p.normalize()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, &apperror.WriteError{Op: "create peripheral", Err: err}
	}
	s.refresh()
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePeripheralRequest) (*Peripheral, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if req.Price != nil && req.Price.LessThanOrEqual(decimal.Zero) {
		return nil, &apperror.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, &apperror.WriteError{Op: "update peripheral", Err: err}
	}
	s.refresh()
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, &apperror.QueryError{Op: "reload peripheral", Err: err}
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &apperror.WriteError{Op: "delete peripheral", Err: err}
	}
	s.refresh()
	return nil
}
