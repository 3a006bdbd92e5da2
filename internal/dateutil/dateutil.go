// Package dateutil holds the calendar arithmetic shared by the availability
// service. All dates are timezone-naive calendar dates pinned to UTC.
package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

const DayKeyLayout = "2006-01-02"

var dayKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatDayKey returns the canonical zero-padded YYYY-MM-DD key for a date.
func FormatDayKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// IsDayKey reports whether s is shaped like a canonical day key.
func IsDayKey(s string) bool {
	return dayKeyPattern.MatchString(s)
}

// ParseDayKey parses a canonical day key into a UTC calendar date.
func ParseDayKey(s string) (time.Time, error) {
	if !IsDayKey(s) {
		return time.Time{}, fmt.Errorf("invalid day key %q", s)
	}
	return time.Parse(DayKeyLayout, s)
}

// MonthBounds returns the half-open range [first day of month, first day of
// the next month). Month values outside 1..12 roll over into adjacent years,
// matching time.Date normalization.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// DaysInMonth returns the number of days in the month, leap-year aware.
// Day 0 of the following month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}
