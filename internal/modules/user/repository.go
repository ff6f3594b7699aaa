package user

import "context"

// Repository defines the interface for user and role storage.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetRole(ctx context.Context, userID string) (string, error)
	Create(ctx context.Context, u *User) error
	AssignRole(ctx context.Context, a *RoleAssignment) error
}
