// Package clock abstracts the current time so date-dependent engine
// logic stays deterministically testable.
package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock.
type System struct{}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Intended for tests.
type Fixed struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.Instant
}
