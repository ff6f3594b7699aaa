package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

type fakeRepo struct {
	expenses map[string]MonthlyExpense
}

func newFakeRepo() *fakeRepo { return &fakeRepo{expenses: map[string]MonthlyExpense{}} }

func (f *fakeRepo) List(ctx context.Context) ([]MonthlyExpense, error) {
	out := []MonthlyExpense{}
	for _, m := range f.expenses {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*MonthlyExpense, error) {
	m, ok := f.expenses[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &m, nil
}

func (f *fakeRepo) Create(ctx context.Context, m *MonthlyExpense) error {
	f.expenses[m.ID.String()] = *m
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, m *MonthlyExpense) error {
	if _, ok := f.expenses[m.ID.String()]; !ok {
		return apperror.ErrNotFound
	}
	f.expenses[m.ID.String()] = *m
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.expenses[id]; !ok {
		return apperror.ErrNotFound
	}
	delete(f.expenses, id)
	return nil
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeTotal(t *testing.T) {
	total := ComputeTotal(dec(500), dec(120), []OtherExpense{
		{Name: "Domínio", Amount: dec(40)},
	})
	if !total.Equal(dec(660)) {
		t.Fatalf("total = %s, want 660", total)
	}
}

func TestCreateDerivesTotal(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	m, err := svc.Create(context.Background(), CreateExpenseRequest{
		Month:         3,
		Year:          2025,
		PaidTraffic:   dec(500),
		BankInsurance: dec(120),
		OtherExpenses: []OtherExpense{{Name: "Domínio", Amount: dec(40)}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !m.Total.Equal(dec(660)) {
		t.Fatalf("total = %s, want 660", m.Total)
	}
}

func TestUpdateOnlyOtherExpensesRecomputesTotal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	m, err := svc.Create(context.Background(), CreateExpenseRequest{
		Month:         3,
		Year:          2025,
		PaidTraffic:   dec(500),
		BankInsurance: dec(120),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	others := []OtherExpense{{Name: "Domínio", Amount: dec(40)}}
	updated, err := svc.Update(context.Background(), m.ID.String(), UpdateExpenseRequest{
		OtherExpenses: &others,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Total.Equal(dec(660)) {
		t.Fatalf("total = %s, want 660", updated.Total)
	}
	if !updated.PaidTraffic.Equal(dec(500)) || !updated.BankInsurance.Equal(dec(120)) {
		t.Fatalf("untouched amounts changed: %+v", updated)
	}
	stored, _ := repo.GetByID(context.Background(), m.ID.String())
	if !stored.Total.Equal(dec(660)) {
		t.Fatalf("stored total = %s, want 660", stored.Total)
	}
}

func TestCreateRejectsBadMonth(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	for _, month := range []int{0, 13, -1} {
		_, err := svc.Create(context.Background(), CreateExpenseRequest{Month: month, Year: 2025})
		var ve *apperror.ValidationError
		if !errors.As(err, &ve) || ve.Field != "month" {
			t.Fatalf("month %d: err = %v, want month validation error", month, err)
		}
	}
}

func TestCreateRejectsNegativeAmounts(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	_, err := svc.Create(context.Background(), CreateExpenseRequest{
		Month: 3, Year: 2025, PaidTraffic: dec(-1),
	})
	var ve *apperror.ValidationError
	if !errors.As(err, &ve) || ve.Field != "paid_traffic" {
		t.Fatalf("err = %v, want paid_traffic validation error", err)
	}
}

func TestCreateNormalizesOtherExpenses(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	m, err := svc.Create(context.Background(), CreateExpenseRequest{Month: 1, Year: 2025})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.OtherExpenses == nil {
		t.Fatal("other_expenses must never be nil")
	}
	if !m.Total.Equal(decimal.Zero) {
		t.Fatalf("total = %s, want 0", m.Total)
	}
}

func TestUpdateMissingID(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	pt := dec(10)
	_, err := svc.Update(context.Background(), "b2f4a6c8-0000-0000-0000-000000000000",
		UpdateExpenseRequest{PaidTraffic: &pt})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want wrapped ErrNotFound", err)
	}
}
