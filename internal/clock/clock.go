// Package clock abstracts "now" so the engine and its tests can agree on the
// current time.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current local time.
type Clock interface {
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// ZonedClock reports system time converted to a fixed location. Used when the
// deployment host's local zone differs from the city the timetable serves.
type ZonedClock struct {
	Location *time.Location
}

func (c ZonedClock) Now() time.Time { return time.Now().In(c.Location) }

// MockClock is a settable clock for tests.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock returns a MockClock frozen at the given instant.
func NewMockClock(now time.Time) *MockClock {
	return &MockClock{now: now}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// SetNow moves the clock to the given instant.
func (c *MockClock) SetNow(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
