package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// employeeIDFromRequest extracts the authenticated employee's ID from the
// verified JWT claims.
func employeeIDFromRequest(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", false
	}

	return employeeID, true
}
