// Package clock provides the wall-clock source used by stores and statistics.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock in the local time zone.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time { return time.Now() }

// Fixed always reports the same instant. Useful for tests and for the
// --today flag.
type Fixed time.Time

// Now implements Clock.
func (f Fixed) Now() time.Time { return time.Time(f) }

// Today returns noon of the clock's current calendar day, in the clock's own
// location. Midnight does not exist on every day where DST applies.
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
}
