// Package clock abstracts the wall clock so date-dependent timetable logic can run against fixed instants.
package clock

import "time"

// Clock yields the current instant in the school's local time.
type Clock interface {
	Now() time.Time
}

// System reads the real wall clock in a fixed location.
type System struct {
	Location *time.Location
}

// NewSystem returns a system clock bound to loc (UTC when nil).
func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.UTC
	}
	return System{Location: loc}
}

// Now implements Clock.
func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Fixed always returns the same instant.
type Fixed time.Time

// Now implements Clock.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
