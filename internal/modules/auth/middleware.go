package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dev-guime/arcade-backend/internal/apperror"
	"github.com/dev-guime/arcade-backend/internal/modules/user"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID extracts the authenticated user's id from the request
// context. It is only set by RequireAdmin.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// RequireAdmin verifies the bearer token and checks the role
// assignment. Non-admins get a 403; the action never reaches the
// handler.
func RequireAdmin(svc Service, roles user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"login required"}`))
				return
			}
			userID, err := svc.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				apperror.Write(w, err)
				return
			}
			role, err := roles.GetRole(r.Context(), userID)
			if err != nil {
				apperror.Write(w, &apperror.QueryError{Op: "look up role", Err: err})
				return
			}
			if role != user.RoleAdmin {
				apperror.Write(w, &apperror.AuthorizationError{Message: "restricted to administrators"})
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}
