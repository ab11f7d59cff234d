package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now is always UTC so stored timestamps serialize the same way everywhere.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a settable clock for tests. With a non-zero step every call to
// Now advances it, which gives records created in a loop distinct timestamps.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	step        time.Duration
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func NewSteppingClock(start time.Time, step time.Duration) *MockClock {
	return &MockClock{currentTime: start, step: step}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.currentTime
	c.currentTime = c.currentTime.Add(c.step)
	return t
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
