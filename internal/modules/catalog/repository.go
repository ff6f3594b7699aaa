package catalog

import "context"

// Repository defines the interface for computer data storage.
type Repository interface {
	List(ctx context.Context) ([]Computer, error)
	GetByID(ctx context.Context, id string) (*Computer, error)
	Create(ctx context.Context, c *Computer) error
	Update(ctx context.Context, id string, req UpdateComputerRequest) error
	Delete(ctx context.Context, id string) error
}
