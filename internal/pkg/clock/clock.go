// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a clock that only moves when told to
type Fixed struct {
	now time.Time
}

// NewFixed returns a clock stopped at now
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

// Now returns the stopped time
func (c *Fixed) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
