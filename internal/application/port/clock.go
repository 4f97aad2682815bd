package port

import "time"

// Clock reports monotonic uptime, the time base for animations and
// app transition timestamps.
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Duration

// Now implements Clock.
func (f ClockFunc) Now() time.Duration {
	return f()
}
