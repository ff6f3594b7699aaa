package expense

import "context"

// Repository defines the interface for monthly expense storage.
type Repository interface {
	List(ctx context.Context) ([]MonthlyExpense, error)
	GetByID(ctx context.Context, id string) (*MonthlyExpense, error)
	Create(ctx context.Context, m *MonthlyExpense) error
	// Update replaces the editable amounts and the derived total in one
	// statement; the period (month/year) is immutable after creation.
	Update(ctx context.Context, m *MonthlyExpense) error
	Delete(ctx context.Context, id string) error
}
