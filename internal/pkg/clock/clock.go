package clock

import "time"

// Clock provides the current calendar date. Injecting it keeps date-based
// business logic deterministic under test.
type Clock interface {
	// Today returns the current date truncated to UTC midnight.
	Today() time.Time
}

// SystemClock is a Clock backed by the wall clock.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Today returns the current UTC calendar date.
func (SystemClock) Today() time.Time {
	return Date(time.Now().UTC())
}

// Date truncates t to UTC midnight.
func Date(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Fixed is a Clock that always reports the same date. Intended for tests.
type Fixed struct {
	Day time.Time
}

// Today returns the fixed date.
func (f Fixed) Today() time.Time {
	return Date(f.Day)
}
