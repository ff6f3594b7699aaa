package inventory

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

const computerColumns = `id, name, price, gpu, cpu, ram, storage, motherboard,
	cooler, watercooler, sold, border_color, image_url, secondary_images,
	created_at, updated_at`

func scanComputer(scan func(...interface{}) error) (*Computer, error) {
	c := &Computer{}
	err := scan(&c.ID, &c.Name, &c.Price, &c.GPU, &c.CPU, &c.RAM, &c.Storage,
		&c.Motherboard, &c.Cooler, &c.Watercooler, &c.Sold, &c.BorderColor,
		&c.ImageURL, pq.Array(&c.SecondaryImages), &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.normalize()
	return c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]Computer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+computerColumns+`
		FROM inventory_computers ORDER BY created_at DESC`)
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
		FROM inventory_computers WHERE id=$1`, uid)
	c, err := scanComputer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, apperror.ErrNotFound
	}
	return c, err
}

func (r *postgresRepo) Create(ctx context.Context, c *Computer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory_computers
		  (id, name, price, gpu, cpu, ram, storage, motherboard, cooler,
		   watercooler, sold, border_color, image_url, secondary_images)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.Name, c.Price, c.GPU, c.CPU, c.RAM, c.Storage, c.Motherboard,
		c.Cooler, c.Watercooler, c.Sold, c.BorderColor, c.ImageURL,
		pq.Array(c.SecondaryImages))
	return err
}

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
	if req.GPU != nil {
		add("gpu", *req.GPU)
	}
	if req.CPU != nil {
		add("cpu", *req.CPU)
	}
	if req.RAM != nil {
		add("ram", *req.RAM)
	}
	if req.Storage != nil {
		add("storage", *req.Storage)
	}
	if req.Motherboard != nil {
		add("motherboard", *req.Motherboard)
	}
	if req.Cooler != nil {
		add("cooler", *req.Cooler)
	}
	if req.Watercooler != nil {
		add("watercooler", *req.Watercooler)
	}
	if req.Sold != nil {
		add("sold", *req.Sold)
	}
	if req.BorderColor != nil {
		add("border_color", *req.BorderColor)
	}
	if req.ImageURL != nil {
		add("image_url", *req.ImageURL)
	}
	if req.SecondaryImages != nil {
		add("secondary_images", pq.Array(*req.SecondaryImages))
	}
	set = append(set, "updated_at=NOW()")
	args = append(args, uid)
	query := fmt.Sprintf(`UPDATE inventory_computers SET %s WHERE id=$%d`,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory_computers WHERE id=$1`, uid)
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
