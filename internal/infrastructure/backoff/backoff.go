// Package backoff provides exponential delay policies and context-aware
// sleeping for retry loops and request throttling.
package backoff

import (
	"context"
	"math/rand"
	"time"
)

// Policy describes an exponential backoff schedule.
type Policy struct {
	// InitialDelay is the delay for attempt 0.
	InitialDelay time.Duration

	// MaxDelay caps the computed delay. Zero means no cap.
	MaxDelay time.Duration

	// Multiplier is the factor applied per attempt (typically 2.0).
	Multiplier float64

	// JitterFactor adds up to this fraction of random extra delay
	// (0.0 to 1.0). Zero disables jitter, keeping delays deterministic.
	JitterFactor float64
}

// Default is the schedule used for upstream API retries: full exponential
// backoff starting at one second, no jitter.
var Default = Policy{
	InitialDelay: 1 * time.Second,
	MaxDelay:     30 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0,
}

// DelayFor computes the delay before retrying after the given zero-based
// attempt: InitialDelay * Multiplier^attempt, plus jitter, capped at MaxDelay.
func (p Policy) DelayFor(attempt int) time.Duration {
	delay := float64(p.InitialDelay)
	for i := 0; i < attempt; i++ {
		delay *= p.Multiplier
	}

	if p.JitterFactor > 0 {
		delay += rand.Float64() * delay * p.JitterFactor
	}

	d := time.Duration(delay)
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	return d
}

// Sleep waits for d or until the context is cancelled, whichever comes first.
// Returns the context error on cancellation so callers can abort retry loops.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
