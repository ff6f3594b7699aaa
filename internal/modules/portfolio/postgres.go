package portfolio

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const soldColumns = `id, name, customer, sold_date, location, specs, image_url,
	border_color, created_at, updated_at`

func scanSold(scan func(...interface{}) error) (*SoldComputer, error) {
	s := &SoldComputer{}
	err := scan(&s.ID, &s.Name, &s.Customer, &s.SoldDate, &s.Location,
		pq.Array(&s.Specs), &s.ImageURL, &s.BorderColor, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.normalize()
	return s, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]SoldComputer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+soldColumns+`
		FROM sold_computers ORDER BY sold_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sold := []SoldComputer{}
	for rows.Next() {
		s, err := scanSold(rows.Scan)
		if err != nil {
			return nil, err
		}
		sold = append(sold, *s)
	}
	return sold, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*SoldComputer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT `+soldColumns+`
		FROM sold_computers WHERE id=$1`, uid)
	s, err := scanSold(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperror.ErrNotFound
	}
	return s, err
}

func (r *postgresRepo) Create(ctx context.Context, s *SoldComputer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sold_computers
		  (id, name, customer, sold_date, location, specs, image_url, border_color)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		s.ID, s.Name, s.Customer, s.SoldDate, s.Location,
		pq.Array(s.Specs), s.ImageURL, s.BorderColor)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, id string, req UpdateSoldRequest) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperror.ErrNotFound
	}
	set := []string{}
	args := []interface{}{}
	add := func(column string, v interface{}) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Customer != nil {
		add("customer", *req.Customer)
	}
	if req.SoldDate != nil {
		add("sold_date", *req.SoldDate)
	}
	if req.Location != nil {
		add("location", *req.Location)
	}
	if req.Specs != nil {
		add("specs", pq.Array(*req.Specs))
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	if req.BorderColor != nil {
		add("border_color", *req.BorderColor)
	}
	set = append(set, "updated_at=NOW()")
	args = append(args, uid)
	query := fmt.Sprintf(`UPDATE sold_computers SET %s WHERE id=$%d`,
		strings.Join(set, ", "), len(args))
	res, err := r.db.ExecContext(ctx, query, args...)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM sold_computers WHERE id=$1`, uid)
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
