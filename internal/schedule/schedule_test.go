package schedule

import (
	"testing"
	"time"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestIsOpen(t *testing.T) {
	loc := berlin(t)

	// 2026-01-05 is a Monday.
	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"monday before open", time.Date(2026, 1, 5, 13, 59, 0, 0, loc), false},
		{"monday at open", time.Date(2026, 1, 5, 14, 0, 0, 0, loc), true},
		{"wednesday afternoon", time.Date(2026, 1, 7, 15, 0, 0, 0, loc), true},
		{"wednesday last minute", time.Date(2026, 1, 7, 22, 59, 0, 0, loc), true},
		{"wednesday at close", time.Date(2026, 1, 7, 23, 0, 0, 0, loc), false},
		{"thursday late night", time.Date(2026, 1, 8, 23, 30, 0, 0, loc), false},
		{"friday before open", time.Date(2026, 1, 9, 11, 59, 0, 0, loc), false},
		{"friday at open", time.Date(2026, 1, 9, 12, 0, 0, 0, loc), true},
		{"friday evening", time.Date(2026, 1, 9, 22, 0, 0, 0, loc), true},
		{"saturday past midnight", time.Date(2026, 1, 10, 0, 30, 0, 0, loc), true},
		{"saturday at late close", time.Date(2026, 1, 10, 1, 0, 0, 0, loc), false},
		{"saturday morning", time.Date(2026, 1, 10, 11, 59, 0, 0, loc), false},
		{"sunday evening", time.Date(2026, 1, 11, 23, 30, 0, 0, loc), true},
		{"monday past midnight", time.Date(2026, 1, 12, 0, 30, 0, 0, loc), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOpen(tt.at); got != tt.want {
				t.Errorf("IsOpen(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestIsOpenConvertsToBerlin(t *testing.T) {
	// 13:30 UTC on a winter Wednesday is 14:30 in Berlin (CET), inside
	// the window even though the UTC hour is before it.
	at := time.Date(2026, 1, 7, 13, 30, 0, 0, time.UTC)
	if !IsOpen(at) {
		t.Errorf("IsOpen(%v) = false, want true", at)
	}
}
