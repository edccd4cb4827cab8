package middleware

import (
	"net/http"

	"bhrms/internal/domain/entity"
	"bhrms/pkg/response"
)

// RequireRole creates a middleware that checks if the session holds any of
// the required roles. Role is read from context (set by AuthMiddleware
// from the token claims), so the check is server-side, not client-trusted.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
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
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireStaff gates referral creation: staff and health workers share the
// same referral surface; admins do not create referrals.
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleStaff, entity.RoleHealthWorker)(next)
}
