package expiry

import "time"

// Clock supplies the current time for insertion stamps and expiry checks.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now returns f().
func (f ClockFunc) Now() time.Time {
	return f()
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
