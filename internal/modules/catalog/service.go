package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// Service defines catalog business logic. Every successful write asks
// the provider to re-fetch; the snapshot is never patched in place.
type Service interface {
	Create(ctx context.Context, req CreateComputerRequest) (*Computer, error)
	Update(ctx context.Context, id string, req UpdateComputerRequest) (*Computer, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	refresh func()
}

// NewService wires the repository to the provider refresh trigger.
func NewService(repo Repository, refresh func()) Service {
	if refresh == nil {
		refresh = func() {}
	}
	return &service{repo: repo, refresh: refresh}
}

func validateCreate(req CreateComputerRequest) error {
	if req.Name == "" {
		return &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		return &apperror.ValidationError{Field: "price", Message: "must be greater than zero"}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateComputerRequest) (*Computer, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}
	c := &Computer{
		ID:              uuid.New(),
		Name:            req.Name,
		Price:           req.Price,
		Category:        req.Category,
		Description:     req.Description,
		Specs:           req.Specs,
		SpecIcons:       req.SpecIcons,
		Highlight:       req.Highlight,
		HighlightLabel:  req.HighlightLabel,
		HighlightColor:  req.HighlightColor,
		ImageURL:        req.ImageURL,
		SecondaryImages: req.SecondaryImages,
	}
	c.normalize()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, &apperror.WriteError{Op: "create computer", Err: err}
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
		return nil, &apperror.WriteError{Op: "update computer", Err: err}
	}
	s.refresh()
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, &apperror.QueryError{Op: "reload computer", Err: err}
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &apperror.WriteError{Op: "delete computer", Err: err}
	}
	s.refresh()
	return nil
}
