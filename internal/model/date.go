package model

import "time"

// DateLayout is the calendar-date format used for every persisted date and
// every date-scoped storage key.
const DateLayout = "2006-01-02"

// FormatDate returns the calendar date of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as noon of that day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, loc), nil
}

// ValidDate reports whether s is a well-formed, zero-padded calendar date.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// DayDiff returns the number of calendar days from a to b (b - a).
// Both arguments must be valid dates; ok is false otherwise.
func DayDiff(a, b string) (days int, ok bool) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, false
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, false
	}
	// Both parsed in UTC, so every day is exactly 24h.
	return int(tb.Sub(ta).Hours() / 24), true
}

// Day returns noon of t's calendar day in t's own location. Noon always
// exists, even on days whose midnight is skipped by a DST change, so the
// result formats back to the same date.
func Day(t time.Time) time.Time {
	return AddDays(t, 0)
}

// AddDays returns noon of the calendar day n days after t's, in t's location.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 12, 0, 0, 0, t.Location())
}

// StartOfWeek returns noon of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := Day(t)
	return AddDays(d, -int(d.Weekday()))
}
