// Package ttlstore provides an in-memory keyed store whose entries expire
// after a TTL. Expired entries are swept lazily on access; there is no
// background goroutine.
package ttlstore

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is a concurrency-safe map with per-entry expiry.
type Store[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]entry[V]
	nowFunc   func() time.Time
	lastSweep time.Time
	sweepGap  time.Duration
}

// Option configures a Store.
type Option func(*options)

type options struct {
	nowFunc  func() time.Time
	sweepGap time.Duration
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(o *options) {
		o.nowFunc = f
	}
}

// WithSweepInterval sets the minimum gap between full sweeps of expired
// entries. Zero sweeps on every access.
func WithSweepInterval(d time.Duration) Option {
	return func(o *options) {
		o.sweepGap = d
	}
}

// New creates an empty Store.
func New[K comparable, V any](opts ...Option) *Store[K, V] {
	o := options{nowFunc: time.Now, sweepGap: time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[K, V]{
		entries:  make(map[K]entry[V]),
		nowFunc:  o.nowFunc,
		sweepGap: o.sweepGap,
	}
}

// SetIfAbsent stores value under key only when no live entry exists. It
// reports whether the value was stored.
func (s *Store[K, V]) SetIfAbsent(key K, value V, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	s.sweepLocked(now)
	if e, ok := s.entries[key]; ok && now.Before(e.expiresAt) {
		return false
	}
	s.entries[key] = entry[V]{value: value, expiresAt: now.Add(ttl)}
	return true
}

// DeleteIf removes key only when its live value satisfies match, and
// reports whether it did.
func (s *Store[K, V]) DeleteIf(key K, match func(V) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || !s.nowFunc().Before(e.expiresAt) || !match(e.value) {
		return false
	}
	delete(s.entries, key)
	return true
}

// Len returns the number of live entries.
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	n := 0
	for _, e := range s.entries {
		if now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}

func (s *Store[K, V]) sweepLocked(now time.Time) {
	if now.Sub(s.lastSweep) < s.sweepGap {
		return
	}
	s.lastSweep = now
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
