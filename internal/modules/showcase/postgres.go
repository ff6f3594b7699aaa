package showcase

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

const deliveredColumns = `id, name, customer, delivery_date, location, specs,
	image_url, created_at, updated_at`

func scanDelivered(scan func(...interface{}) error) (*DeliveredComputer, error) {
	d := &DeliveredComputer{}
	err := scan(&d.ID, &d.Name, &d.Customer, &d.DeliveryDate, &d.Location,
		pq.Array(&d.Specs), &d.ImageURL, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.normalize()
	return d, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]DeliveredComputer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+deliveredColumns+`
		FROM delivered_computers ORDER BY delivery_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	delivered := []DeliveredComputer{}
	for rows.Next() {
		d, err := scanDelivered(rows.Scan)
		if err != nil {
			return nil, err
		}
		delivered = append(delivered, *d)
	}
	return delivered, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*DeliveredComputer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT `+deliveredColumns+`
		FROM delivered_computers WHERE id=$1`, uid)
	d, err := scanDelivered(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperror.ErrNotFound
	}
	return d, err
}

func (r *postgresRepo) Create(ctx context.Context, d *DeliveredComputer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO delivered_computers
		  (id, name, customer, delivery_date, location, specs, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.Name, d.Customer, d.DeliveryDate, d.Location,
		pq.Array(d.Specs), d.ImageURL)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, id string, req UpdateDeliveredRequest) error {
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
	if req.DeliveryDate != nil {
		add("delivery_date", *req.DeliveryDate)
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
	set = append(set, "updated_at=NOW()")
	args = append(args, uid)
	query := fmt.Sprintf(`UPDATE delivered_computers SET %s WHERE id=$%d`,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM delivered_computers WHERE id=$1`, uid)
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
