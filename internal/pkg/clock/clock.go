package clock

import "time"

type Clock interface {
	Now() time.Time
	// Today is the current calendar date in the business time zone, at UTC midnight.
	Today() time.Time
}

type RealClock struct {
	loc *time.Location
}

func NewRealClock() Clock {
	return NewRealClockIn(time.Local)
}

func NewRealClockIn(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) Today() time.Time {
	return dateOf(time.Now().In(c.loc))
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

func (c *MockClock) Today() time.Time {
	return dateOf(c.currentTime)
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
