package peripheral

import "context"

// Repository defines the interface for peripheral data storage.
type Repository interface {
	List(ctx context.Context) ([]Peripheral, error)
	GetByID(ctx context.Context, id string) (*Peripheral, error)
	Create(ctx context.Context, p *Peripheral) error
	Update(ctx context.Context, id string, req UpdatePeripheralRequest) error
	Delete(ctx context.Context, id string) error
}
