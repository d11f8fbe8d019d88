package middleware

import (
	"net/http"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/domain/user"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromClaims(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok || !user.ValidRole(roleStr) {
		return "", false
	}
	return user.Role(roleStr), true
}

// RequireRole allows only the listed roles through.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleFromClaims(r)
			if !ok {
				response.Forbidden(w, "insufficient permissions for this action")
				return
			}
			if _, ok := allowed[role]; !ok {
				response.Forbidden(w, "insufficient permissions for this action")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireReviewer allows supervisor, HR and superadmin accounts.
func RequireReviewer(next http.Handler) http.Handler {
	return RequireRole(user.RoleSupervisor, user.RoleHR, user.RoleSuperAdmin)(next)
}

// RequireAdmin allows HR and superadmin accounts.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleHR, user.RoleSuperAdmin)(next)
}

// RequireSuperAdmin allows only the superadmin account.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return RequireRole(user.RoleSuperAdmin)(next)
}
