// Package proximity decides which records fall close to a date: upcoming
// fertilizer applications, machines due for maintenance, and work that is
// past its due date.
package proximity

import (
	"fmt"
	"time"

	"agro/entities"
)

const (
	DefaultUpcomingWindow     = 7
	DefaultMaintenanceHorizon = 30
)

// Clock returns the current instant.
type Clock func() time.Time

// SystemClock reports wall-clock time in loc.
func SystemClock(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

// Fixed always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// ParseDay reads a YYYY-MM-DD date as midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(entities.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil counts whole calendar days from now's date to target's date.
// Both are compared as civil dates, so the time of day of now never moves
// a record across a boundary.
func DaysUntil(now, target time.Time) int {
	return int(civil(target).Sub(civil(now)).Hours() / 24)
}

// DaysUntilDate is DaysUntil for a YYYY-MM-DD date read in now's location.
func DaysUntilDate(now time.Time, date string) (int, error) {
	d, err := ParseDay(date, now.Location())
	if err != nil {
		return 0, err
	}
	return DaysUntil(now, d), nil
}

// Within reports whether date falls between today and today+window, both
// ends included.
func Within(now time.Time, date string, window int) bool {
	n, err := DaysUntilDate(now, date)
	if err != nil {
		return false
	}
	return n >= 0 && n <= window
}
