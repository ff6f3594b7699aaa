package expense

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// Service defines monthly expense business logic. Updates read the
// current row, apply the provided fields and recompute the total
// before writing. The stored total is always derived, never echoed
// back from the client.
type Service interface {
	Create(ctx context.Context, req CreateExpenseRequest) (*MonthlyExpense, error)
	Update(ctx context.Context, id string, req UpdateExpenseRequest) (*MonthlyExpense, error)
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

func validateAmounts(paidTraffic, bankInsurance decimal.Decimal, others []OtherExpense) error {
	if paidTraffic.IsNegative() {
		return &apperror.ValidationError{Field: "paid_traffic", Message: "must not be negative"}
	}
	if bankInsurance.IsNegative() {
		return &apperror.ValidationError{Field: "bank_insurance", Message: "must not be negative"}
	}
	for _, o := range others {
		if o.Name == "" {
			return &apperror.ValidationError{Field: "other_expenses", Message: "every entry needs a name"}
		}
		if o.Amount.IsNegative() {
			return &apperror.ValidationError{Field: "other_expenses", Message: "amounts must not be negative"}
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateExpenseRequest) (*MonthlyExpense, error) {
	if req.Month < 1 || req.Month > 12 {
		return nil, &apperror.ValidationError{Field: "month", Message: "must be between 1 and 12"}
	}
	if req.Year < 2000 || req.Year > time.Now().Year()+1 {
		return nil, &apperror.ValidationError{Field: "year", Message: "out of range"}
	}
	if err := validateAmounts(req.PaidTraffic, req.BankInsurance, req.OtherExpenses); err != nil {
		return nil, err
	}
	m := &MonthlyExpense{
		ID:            uuid.New(),
		Month:         req.Month,
		Year:          req.Year,
		PaidTraffic:   req.PaidTraffic,
		BankInsurance: req.BankInsurance,
		OtherExpenses: req.OtherExpenses,
	}
	m.normalize()
	m.Total = ComputeTotal(m.PaidTraffic, m.BankInsurance, m.OtherExpenses)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, &apperror.WriteError{Op: "create monthly expense", Err: err}
	}
	s.refresh()
	return m, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateExpenseRequest) (*MonthlyExpense, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, &apperror.WriteError{Op: "update monthly expense", Err: err}
	}
	if req.PaidTraffic != nil {
		current.PaidTraffic = *req.PaidTraffic
	}
	if req.BankInsurance != nil {
		current.BankInsurance = *req.BankInsurance
	}
	if req.OtherExpenses != nil {
		current.OtherExpenses = *req.OtherExpenses
	}
	current.normalize()
	if err := validateAmounts(current.PaidTraffic, current.BankInsurance, current.OtherExpenses); err != nil {
		return nil, err
	}
	current.Total = ComputeTotal(current.PaidTraffic, current.BankInsurance, current.OtherExpenses)
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, &apperror.WriteError{Op: "update monthly expense", Err: err}
	}
	s.refresh()
	return current, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return &apperror.WriteError{Op: "delete monthly expense", Err: err}
	}
	s.refresh()
	return nil
}
