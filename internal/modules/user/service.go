package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dev-guime/arcade-backend/internal/apperror"
)

// Service defines user provisioning logic.
type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if !strings.Contains(req.Email, "@") {
		return nil, &apperror.ValidationError{Field: "email", Message: "invalid"}
	}
	if len(req.Password) < 8 {
		return nil, &apperror.ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}
	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleAdmin && role != RoleUser {
		return nil, &apperror.ValidationError{Field: "role", Message: "must be admin or user"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, &apperror.WriteError{Op: "create user", Err: err}
	}
	assignment := &RoleAssignment{ID: uuid.New(), UserID: u.ID, Role: role}
	if err := s.repo.AssignRole(ctx, assignment); err != nil {
		return nil, &apperror.WriteError{Op: "assign role", Err: err}
	}
	return u, nil
}
