package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stations-server/internal/schedule"
)

func TestOpenHoursGate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("open window passes through", func(t *testing.T) {
		// Wednesday 15:00 Berlin
		clock := func() time.Time { return time.Date(2026, 1, 7, 15, 0, 0, 0, loc) }
		rec := httptest.NewRecorder()

		OpenHours(clock)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("closed window is rejected with timetable", func(t *testing.T) {
		// Wednesday 23:30 Berlin
		clock := func() time.Time { return time.Date(2026, 1, 7, 23, 30, 0, 0, loc) }
		rec := httptest.NewRecorder()

		OpenHours(clock)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stations", nil))

		if rec.Code != http.StatusLocked {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusLocked)
		}
		if !strings.Contains(rec.Body.String(), schedule.OpenHoursText) {
			t.Errorf("body %q does not carry the timetable text", rec.Body.String())
		}
	})
}
