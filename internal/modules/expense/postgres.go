package expense

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const expenseColumns = `id, month, year, paid_traffic, bank_insurance,
	other_expenses, total, created_at, updated_at`

func scanExpense(scan func(...interface{}) error) (*MonthlyExpense, error) {
	m := &MonthlyExpense{}
	var others []byte
	err := scan(&m.ID, &m.Month, &m.Year, &m.PaidTraffic, &m.BankInsurance,
		&others, &m.Total, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(others) > 0 {
		if err := json.Unmarshal(others, &m.OtherExpenses); err != nil {
			return nil, err
		}
	}
	m.normalize()
	return m, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]MonthlyExpense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+expenseColumns+`
		FROM monthly_expenses ORDER BY year DESC, month DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []MonthlyExpense{}
	for rows.Next() {
		m, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *m)
	}
	return expenses, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*MonthlyExpense, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT `+expenseColumns+`
		FROM monthly_expenses WHERE id=$1`, uid)
	m, err := scanExpense(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperror.ErrNotFound
	}
	return m, err
}

func (r *postgresRepo) Create(ctx context.Context, m *MonthlyExpense) error {
	others, err := json.Marshal(m.OtherExpenses)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO monthly_expenses
		  (id, month, year, paid_traffic, bank_insurance, other_expenses, total)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.Month, m.Year, m.PaidTraffic, m.BankInsurance, others, m.Total)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, m *MonthlyExpense) error {
	others, err := json.Marshal(m.OtherExpenses)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE monthly_expenses
		SET paid_traffic=$1, bank_insurance=$2, other_expenses=$3, total=$4,
		    updated_at=NOW()
		WHERE id=$5`,
		m.PaidTraffic, m.BankInsurance, others, m.Total, m.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperror.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM monthly_expenses WHERE id=$1`, uid)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
