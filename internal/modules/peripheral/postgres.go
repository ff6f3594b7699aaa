package peripheral

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

const peripheralColumns = `id, name, price, category, description, specs,
	highlight, highlight_label, highlight_color, image_url, secondary_images,
	created_at, updated_at`

func scanPeripheral(scan func(...interface{}) error) (*Peripheral, error) {
	p := &Peripheral{}
	err := scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description,
		pq.Array(&p.Specs),
		&p.Highlight, &p.HighlightLabel, &p.HighlightColor,
		&p.ImageURL, pq.Array(&p.SecondaryImages),
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.normalize()
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]Peripheral, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+peripheralColumns+`
		FROM peripherals ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	peripherals := []Peripheral{}
	for rows.Next() {
		p, err := scanPeripheral(rows.Scan)
		if err != nil {
			return nil, err
		}
		peripherals = append(peripherals, *p)
	}
	return peripherals, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Peripheral, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT `+peripheralColumns+`
		FROM peripherals WHERE id=$1`, uid)
	p, err := scanPeripheral(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperror.ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) Create(ctx context.Context, p *Peripheral) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO peripherals
		  (id, name, price, category, description, specs,
		   highlight, highlight_label, highlight_color, image_url, secondary_images)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.Name, p.Price, p.Category, p.Description,
		pq.Array(p.Specs),
		p.Highlight, p.HighlightLabel, p.HighlightColor,
		p.ImageURL, pq.Array(p.SecondaryImages))
	return err
}

func (r *postgresRepo) Update(ctx context.Context, id string, req UpdatePeripheralRequest) error {
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
	if req.Price != nil {
		add("price", *req.Price)
	}
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Specs != nil {
		add("specs", pq.Array(*req.Specs))
	}
	if req.Highlight != nil {
		add("highlight", *req.Highlight)
	}
	if req.HighlightLabel != nil {
		add("highlight_label", *req.HighlightLabel)
	}
	if req.HighlightColor != nil {
		add("highlight_color", *req.HighlightColor)
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	if req.SecondaryImages != nil {
		add("secondary_images", pq.Array(*req.SecondaryImages))
	}
	set = append(set, "updated_at=NOW()")
	args = append(args, uid)
	query := fmt.Sprintf(`UPDATE peripherals SET %s WHERE id=$%d`,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM peripherals WHERE id=$1`, uid)
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
