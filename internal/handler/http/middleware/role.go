package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/domain/assignment"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/worker"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

func roleFromContext(r *http.Request) (worker.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return worker.Role(roleStr), true
}

// RequireElevated requires manager, owner or admin role
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || !role.IsElevated() {
			response.HandleError(w, assignment.ErrNotPermitted)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOwner requires owner or admin role
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != worker.RoleOwner && !role.IsAdmin()) {
			response.HandleError(w, assignment.ErrNotPermitted)
			return
		}
		next.ServeHTTP(w, r)
	})
}
