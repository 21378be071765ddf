// Package cache provides a generic in-memory TTL cache wrapping a producer
// function. Entries live until their expiry and are regenerated on the next
// read; there is no eviction before expiry and no persistence across restarts.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/flyon/flyon-api/internal/infrastructure/timeutil"
)

// Store is a TTL key-value cache for values of type V.
// It is safe for concurrent use. Concurrent producers racing on the same key
// are tolerated: last write wins, and exactly-once execution per key is not
// guaranteed.
type Store[V any] struct {
	clock     timeutil.Clock
	skipStore func(V) bool

	mu      sync.Mutex
	entries map[string]entry[V]
}

type entry[V any] struct {
	value  V
	expiry time.Time
}

// Option configures a Store.
type Option[V any] func(*Store[V])

// WithSkipStore sets a predicate that prevents produced values from being
// stored. Used to keep empty results out of the cache so the next request
// retries upstream instead of freezing an empty result for the full TTL.
func WithSkipStore[V any](fn func(V) bool) Option[V] {
	return func(s *Store[V]) {
		s.skipStore = fn
	}
}

// New creates a Store using the given clock for expiry decisions.
// Pass a MockClock in tests for deterministic TTL behavior.
func New[V any](clock timeutil.Clock, opts ...Option[V]) *Store[V] {
	s := &Store[V]{
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SkipEmptySlice reports whether a slice value is empty. Intended as a
// WithSkipStore predicate for slice-valued stores.
func SkipEmptySlice[E any](v []E) bool {
	return len(v) == 0
}

// Get returns the cached value for key if present and unexpired.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !s.clock.Now().Before(e.expiry) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetOrFetch returns the cached value for key, invoking producer on a miss or
// expiry and storing the result with expiry = now + ttl. The returned bool
// reports whether the value came from the cache.
//
// Producer errors propagate unchanged and nothing is stored. The producer runs
// outside the store lock, so slow fetches do not block readers of other keys.
func (s *Store[V]) GetOrFetch(ctx context.Context, key string, ttl time.Duration, producer func(context.Context) (V, error)) (V, bool, error) {
	if v, ok := s.Get(key); ok {
		return v, true, nil
	}

	v, err := producer(ctx)
	if err != nil {
		var zero V
		return zero, false, err
	}

	if s.skipStore == nil || !s.skipStore(v) {
		s.mu.Lock()
		s.entries[key] = entry[V]{value: v, expiry: s.clock.Now().Add(ttl)}
		s.mu.Unlock()
	}

	return v, false, nil
}

// Len returns the number of entries currently held, expired or not.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
