package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"stations-server/internal/schedule"
	"stations-server/internal/shared/errors"
	"stations-server/internal/shared/response"
)

// OpenHours rejects requests outside the roleplay window. The clock is
// injected so tests can pin the time.
func OpenHours(now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !schedule.IsOpen(now()) {
				logger := slog.With(
					"middleware", "open_hours",
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Error(w, r, logger, errors.Closed(schedule.OpenHoursText))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
