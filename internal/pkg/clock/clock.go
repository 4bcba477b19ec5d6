package clock

import (
	"time"

	"gongsil-api/internal/pkg/config"
)

// Clock returns the current time in the service's calendar zone, so that
// Now().Format("2006-01-02") is the local date.
type Clock interface {
	Now() time.Time
}

type RealClock struct {
	loc *time.Location
}

func NewRealClock(cfg config.Config) Clock {
	return &RealClock{loc: cfg.Locale.Location()}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
