package ttlstore

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestStore_SetIfAbsent(t *testing.T) {
	t.Parallel()

	clock := newClock()
	s := New[int64, string](WithNowFunc(clock.Now))

	assert.True(t, s.SetIfAbsent(1, "first", time.Minute))
	assert.False(t, s.SetIfAbsent(1, "second", time.Minute))
	assert.True(t, s.DeleteIf(1, func(v string) bool { return v == "first" }), "first value kept")

	assert.True(t, s.SetIfAbsent(1, "third", time.Minute))
	clock.Advance(59 * time.Second)
	assert.False(t, s.SetIfAbsent(1, "fourth", time.Minute))

	clock.Advance(time.Second)
	assert.True(t, s.SetIfAbsent(1, "fourth", time.Minute), "entry expires exactly at its TTL")
}

func TestStore_DeleteIf(t *testing.T) {
	t.Parallel()

	clock := newClock()
	s := New[string, string](WithNowFunc(clock.Now))
	s.SetIfAbsent("k", "token-a", time.Minute)

	assert.False(t, s.DeleteIf("k", func(v string) bool { return v == "token-b" }))
	assert.True(t, s.DeleteIf("k", func(v string) bool { return v == "token-a" }))
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.DeleteIf("missing", func(string) bool { return true }))

	s.SetIfAbsent("k", "token-c", time.Minute)
	clock.Advance(time.Minute)
	assert.False(t, s.DeleteIf("k", func(string) bool { return true }), "expired entry is not live")
}

func TestStore_Len(t *testing.T) {
	t.Parallel()

	clock := newClock()
	s := New[string, int](WithNowFunc(clock.Now), WithSweepInterval(time.Hour))

	s.SetIfAbsent("a", 1, time.Second)
	s.SetIfAbsent("b", 2, time.Hour)
	assert.Equal(t, 2, s.Len())

	clock.Advance(2 * time.Second)
	assert.Equal(t, 1, s.Len(), "expired entries are not counted before a sweep")
	assert.Len(t, s.entries, 2)
}

func TestStore_LazySweep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		gap       time.Duration
		wantAfter int
	}{
		{name: "sweeps on every access", gap: 0, wantAfter: 2},
		{name: "waits for the sweep interval", gap: time.Minute, wantAfter: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clock := newClock()
			s := New[string, int](WithNowFunc(clock.Now), WithSweepInterval(tt.gap))

			s.SetIfAbsent("a", 1, time.Second)
			s.SetIfAbsent("b", 2, time.Hour)
			require.Len(t, s.entries, 2)

			clock.Advance(2 * time.Second)
			s.SetIfAbsent("c", 3, time.Hour)
			assert.Len(t, s.entries, tt.wantAfter)
		})
	}
}

func TestStore_ConcurrentSetIfAbsent(t *testing.T) {
	t.Parallel()

	s := New[string, int]()
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.SetIfAbsent("lease", i, time.Minute) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}
