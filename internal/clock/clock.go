package clock

import "time"

// Clock provides the current time so callers can substitute it in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the host wall clock
type RealClock struct{}

// Now returns the current local time
func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return f.T
}

// OrReal returns c, or RealClock when c is nil
func OrReal(c Clock) Clock {
	if c == nil {
		return RealClock{}
	}
	return c
}
