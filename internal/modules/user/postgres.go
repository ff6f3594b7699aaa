package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users WHERE email=$1`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetRole is a single-row lookup; a user without an assignment row
// gets the non-privileged role.
func (r *postgresRepo) GetRole(ctx context.Context, userID string) (string, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return "", apperror.ErrNotFound
	}
	var role string
	err = r.db.QueryRowContext(ctx, `
		SELECT role FROM user_roles WHERE user_id=$1`, uid).Scan(&role)
	if err == sql.ErrNoRows {
		return RoleUser, nil
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (r *postgresRepo) Create(ctx context.Context, u *User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1,$2,$3)`,
		u.ID, u.Email, u.PasswordHash)
	return err
}

func (r *postgresRepo) AssignRole(ctx context.Context, a *RoleAssignment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_roles (id, user_id, role)
		VALUES ($1,$2,$3)
		ON CONFLICT (user_id) DO UPDATE SET role=EXCLUDED.role`,
		a.ID, a.UserID, a.Role)
	return err
}
