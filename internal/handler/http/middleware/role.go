package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/saliheu/KAMU-AKYS/internal/domain/employee"
	"github.com/saliheu/KAMU-AKYS/internal/handler/http/response"
)

func roleFromClaims(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return employee.Role(roleStr), true
}

// RequireApprover allows managers, HR and admins. Whether a manager may
// decide on a specific request is checked in the service against the
// reporting chain; this gate only keeps regular employees out.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok {
			response.Forbidden(w, "Approver access required")
			return
		}

		switch role {
		case employee.RoleManager, employee.RoleHR, employee.RoleAdmin:
			next.ServeHTTP(w, r)
		default:
			response.Forbidden(w, "Approver access required")
		}
	})
}

// RequireHR allows HR and admins only.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok {
			response.Forbidden(w, "HR access required")
			return
		}

		if role != employee.RoleHR && role != employee.RoleAdmin {
			response.Forbidden(w, "HR access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
