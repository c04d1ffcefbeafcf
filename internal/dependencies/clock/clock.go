package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time

	// NowMillis returns the current time in epoch milliseconds, the unit
	// all economy accounting is done in.
	NowMillis() int64
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// NowMillis returns the current time in epoch milliseconds
func (c *RealClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}
