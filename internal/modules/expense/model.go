package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OtherExpense is a single named entry inside a month's record.
type OtherExpense struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyExpense tracks one month's fixed spend. Total is derived:
// paid_traffic + bank_insurance + sum of other entries. It is
// recomputed on every write and never trusted from the caller.
type MonthlyExpense struct {
	ID            uuid.UUID       `json:"id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	PaidTraffic   decimal.Decimal `json:"paid_traffic"`
	BankInsurance decimal.Decimal `json:"bank_insurance"`
	OtherExpenses []OtherExpense  `json:"other_expenses"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateExpenseRequest holds the three editable amounts plus the
// period. A total sent by the caller is ignored.
type CreateExpenseRequest struct {
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	PaidTraffic   decimal.Decimal `json:"paid_traffic"`
	BankInsurance decimal.Decimal `json:"bank_insurance"`
	OtherExpenses []OtherExpense  `json:"other_expenses"`
}

type UpdateExpenseRequest struct {
	PaidTraffic   *decimal.Decimal `json:"paid_traffic,omitempty"`
	BankInsurance *decimal.Decimal `json:"bank_insurance,omitempty"`
	OtherExpenses *[]OtherExpense  `json:"other_expenses,omitempty"`
}

func (m *MonthlyExpense) normalize() {
	if m.OtherExpenses == nil {
		m.OtherExpenses = []OtherExpense{}
	}
}

// ComputeTotal derives the stored total from the editable fields.
func ComputeTotal(paidTraffic, bankInsurance decimal.Decimal, others []OtherExpense) decimal.Decimal {
	total := paidTraffic.Add(bankInsurance)
	for _, o := range others {
		total = total.Add(o.Amount)
	}
	return total
}
