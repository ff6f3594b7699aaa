package portfolio

import "context"

// Repository defines the interface for sold-computer storage.
type Repository interface {
	List(ctx context.Context) ([]SoldComputer, error)
	GetByID(ctx context.Context, id string) (*SoldComputer, error)
	Create(ctx context.Context, s *SoldComputer) error
	Update(ctx context.Context, id string, req UpdateSoldRequest) error
	Delete(ctx context.Context, id string) error
}
