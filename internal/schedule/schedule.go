// Package schedule decides whether the economy accepts actions at a
// given moment. The timetable is fixed and evaluated in Europe/Berlin
// regardless of where the caller or the server lives.
package schedule

import (
	"sync"
	"time"
)

// OpenHoursText is the human-readable timetable included in every
// closed-window failure so callers can render it verbatim.
const OpenHoursText = "Öffnungszeiten: Mo–Do 14:00–23:00 | Fr–So 12:00–01:00 (Europe/Berlin)"

var location = sync.OnceValue(func() *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic("schedule: Europe/Berlin timezone data unavailable: " + err.Error())
	}
	return loc
})

// IsOpen reports whether the weekly timetable is open at t:
// Monday-Thursday 14:00-23:00, Friday-Sunday 12:00-01:00 (the weekend
// window crosses midnight).
func IsOpen(t time.Time) bool {
	local := t.In(location())
	minute := local.Hour()*60 + local.Minute()

	switch local.Weekday() {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return minute >= 14*60 && minute < 23*60
	default:
		// Friday, Saturday, Sunday
		return minute >= 12*60 || minute < 1*60
	}
}
