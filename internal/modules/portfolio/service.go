package portfolio

import (
	"context"

	"github.com/google/uuid"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// Service defines portfolio business logic.
type Service interface {
	Create(ctx context.Context, req CreateSoldRequest) (*SoldComputer, error)
	Update(ctx context.Context, id string, req UpdateSoldRequest) (*SoldComputer, error)
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

func (s *service) Create(ctx context.Context, req CreateSoldRequest) (*SoldComputer, error) {
	if req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if req.SoldDate.IsZero() {
		return nil, &apperror.ValidationError{Field: "sold_date", Message: "required"}
	}
	sc := &SoldComputer{
		ID:          uuid.New(),
		Name:        req.Name,
		Customer:    req.Customer,
		SoldDate:    req.SoldDate,
		Location:    req.Location,
		Specs:       req.Specs,
		ImageURL:    req.ImageURL,
		BorderColor: req.BorderColor,
	}
	sc.normalize()
	if err := s.repo.Create(ctx, sc); err != nil {
		return nil, &apperror.WriteError{Op: "create sold computer", Err: err}
	}
	s.refresh()
	return sc, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateSoldRequest) (*SoldComputer, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, &apperror.ValidationError{Field: "name", Message: "required"}
	}
	if err := s.repo.Update(ctx, id, req); err != nil {
		return nil, &apperror.WriteError{Op: "update sold computer", Err: err}
	}
	s.refresh()
	sc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, &apperror.QueryError{Op: "reload sold computer", Err: err}
	}
	return sc, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &apperror.WriteError{Op: "delete sold computer", Err: err}
	}
	s.refresh()
	return nil
}
