package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the back office.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role values. The role assignment row is the single source of
// authorization truth; everything else derives from it.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// RoleAssignment binds one user to one role.
type RoleAssignment struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

// CreateUserRequest is the payload for provisioning an account.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
