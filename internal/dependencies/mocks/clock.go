package mocks

import (
	"time"

	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	CurrentTime time.Time
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// NowMillis returns the mocked current time in epoch milliseconds
func (c *MockClock) NowMillis() int64 {
	return c.CurrentTime.UnixMilli()
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// AdvanceMillis moves the clock forward by the given number of milliseconds
func (c *MockClock) AdvanceMillis(ms int64) {
	c.CurrentTime = c.CurrentTime.Add(time.Duration(ms) * time.Millisecond)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
