package showcase

import "context"

// Repository defines the interface for delivered-computer storage.
type Repository interface {
	List(ctx context.Context) ([]DeliveredComputer, error)
	GetByID(ctx context.Context, id string) (*DeliveredComputer, error)
	Create(ctx context.Context, d *DeliveredComputer) error
	Update(ctx context.Context, id string, req UpdateDeliveredRequest) error
	Delete(ctx context.Context, id string) error
}
