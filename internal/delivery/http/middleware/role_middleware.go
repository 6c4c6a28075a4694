package middleware

import (
	"net/http"

	"github.com/sandy191020/LexConnect/internal/domain/entity"
	"github.com/sandy191020/LexConnect/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireLawyer is a convenience middleware for lawyer-only endpoints
func RequireLawyer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDLawyer)(next)
}

// RequireClient is a convenience middleware for client-only endpoints
func RequireClient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDClient)(next)
}

// RequireClientOrLawyer is a convenience middleware for booking list endpoints
func RequireClientOrLawyer(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDClient, entity.RoleIDLawyer)(next)
}
