package middleware

import (
	"net/http"

	"github.com/mindwellhq/mindwell-backend/internal/api/httpx"
)

// RequireRole allows only requests whose verified identity carries the
// given role. Must run after Auth.
func RequireRole(need string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
				return
			}
			if id.Role != need {
				httpx.WriteError(w, http.StatusForbidden, "forbidden", "insufficient privileges", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
