package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_TracksSystemTime(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock_FixedUntilMoved(t *testing.T) {
	fixed := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	clock := NewMockClock(fixed)

	assert.Equal(t, fixed, clock.Now())
	assert.Equal(t, fixed, clock.Now(), "repeated reads do not advance")

	clock.Advance(90 * time.Minute)
	assert.Equal(t, fixed.Add(90*time.Minute), clock.Now())

	reset := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(reset)
	assert.Equal(t, reset, clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2026-06-15T10:30:00Z")

	want := time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)
	require.True(t, clock.Now().Equal(want))
}

func TestNewMockClockFromString_PanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() {
		NewMockClockFromString("not-a-time")
	})
}
