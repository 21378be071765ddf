// Package timeutil provides a clock abstraction so cache expiry and date-window
// logic can be tested deterministically.
package timeutil

import "time"

// Clock abstracts time.Now. Production code uses RealClock; tests inject a
// MockClock to control expiry and window calculations.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system time.
type RealClock struct{}

// NewRealClock returns a Clock backed by the system time.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually driven clock for tests. It only moves when Set or
// Advance is called.
type MockClock struct {
	now time.Time
}

// NewMockClock returns a MockClock frozen at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// NewMockClockFromString returns a MockClock frozen at the given RFC3339
// instant. Panics on a malformed string; test setup only.
func NewMockClockFromString(value string) *MockClock {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("invalid time string: " + err.Error())
	}
	return NewMockClock(t)
}

func (m *MockClock) Now() time.Time {
	return m.now
}

// Set moves the clock to t.
func (m *MockClock) Set(t time.Time) {
	m.now = t
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
