package kapaipai_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{name: "allows calls within rate", rate: 100, burst: 10, daily: 5000, calls: 3},
		{name: "unlimited daily budget", rate: 100, burst: 10, daily: 0, calls: 20},
		{name: "rejects when daily budget reached", rate: 100, burst: 10, daily: 2, calls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := kapaipai.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.Error(t, lastErr)
				assert.ErrorIs(t, lastErr, kapaipai.ErrCallBudgetExhausted)
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}

func TestRateLimiter_Remaining(t *testing.T) {
	t.Parallel()

	rl := kapaipai.NewRateLimiter(100, 10, 3)
	assert.Equal(t, int64(3), rl.Remaining())

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(2), rl.Remaining())
	assert.Equal(t, int64(1), rl.DailyCount())

	assert.Equal(t, int64(-1), kapaipai.NewRateLimiter(1, 1, 0).Remaining())
}

func TestRateLimiter_WindowReset(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	rl := kapaipai.NewRateLimiter(100, 10, 1, kapaipai.WithRateLimiterNowFunc(clock))
	require.NoError(t, rl.Wait(context.Background()))
	require.Error(t, rl.Wait(context.Background()))

	mu.Lock()
	now = now.Add(25 * time.Hour)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	assert.Equal(t, int64(1), rl.DailyCount())
}

func TestRateLimiter_ContextCanceled(t *testing.T) {
	t.Parallel()

	rl := kapaipai.NewRateLimiter(0.001, 1, 0)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, rl.Wait(ctx))
}

func TestRateLimiter_CheckBudget(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rl := kapaipai.NewRateLimiter(100, 10, 1,
		kapaipai.WithRateLimiterNowFunc(func() time.Time { return now }))

	require.NoError(t, rl.CheckBudget(context.Background()))
	require.NoError(t, rl.Wait(context.Background()))

	err := rl.CheckBudget(context.Background())
	require.ErrorIs(t, err, kapaipai.ErrCallBudgetExhausted)
	assert.Equal(t, int64(1), rl.DailyCount(), "checking must not consume budget")

	now = now.Add(25 * time.Hour)
	require.NoError(t, rl.CheckBudget(context.Background()))

	assert.NoError(t, kapaipai.NewRateLimiter(1, 1, 0).CheckBudget(context.Background()))
}
