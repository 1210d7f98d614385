package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mindwellhq/mindwell-backend/internal/api/httpx"
)

// Recover converts panics into a generic 500 so nothing crashes the process.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec, "path", r.URL.Path)
				httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
