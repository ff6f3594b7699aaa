package catalog

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

const computerColumns = `id, name, price, category, description, specs, spec_icons,
	highlight, highlight_label, highlight_color, image_url, secondary_images,
	created_at, updated_at`

func scanComputer(scan func(...interface{}) error) (*Computer, error) {
	c := &Computer{}
	err := scan(&c.ID, &c.Name, &c.Price, &c.Category, &c.Description,
		pq.Array(&c.Specs), pq.Array(&c.SpecIcons),
		&c.Highlight, &c.HighlightLabel, &c.HighlightColor,
		&c.ImageURL, pq.Array(&c.SecondaryImages),
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.normalize()
	return c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]Computer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+computerColumns+`
		FROM computers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	computers := []Computer{}
	for rows.Next() {
		c, err := scanComputer(rows.Scan)
		if err != nil {
			return nil, err
		}
		computers = append(computers, *c)
	}
	return computers, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Computer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT `+computerColumns+`
		FROM computers WHERE id=$1`, uid)
	c, err := scanComputer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperror.ErrNotFound
	}
	return c, err
}

func (r *postgresRepo) Create(ctx context.Context, c *Computer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO computers
		  (id, name, price, category, description, specs, spec_icons,
		   highlight, highlight_label, highlight_color, image_url, secondary_images)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.Name, c.Price, c.Category, c.Description,
		pq.Array(c.Specs), pq.Array(c.SpecIcons),
		c.Highlight, c.HighlightLabel, c.HighlightColor,
		c.ImageURL, pq.Array(c.SecondaryImages))
	return err
}

// Update writes only the fields present in req. The SET clause is
// built per call so that unspecified fields are simply not mentioned.
func (r *postgresRepo) Update(ctx context.Context, id string, req UpdateComputerRequest) error {
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
	if req.SpecIcons != nil {
		add("spec_icons", pq.Array(*req.SpecIcons))
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
	query := fmt.Sprintf(`UPDATE computers SET %s WHERE id=$%d`,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM computers WHERE id=$1`, uid)
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
