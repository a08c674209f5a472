package engine

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	kapaipaiMocks "github.com/mong0520/kapaipai-api/internal/kapaipai/mocks"
	"github.com/mong0520/kapaipai-api/internal/notify"
	notifyMocks "github.com/mong0520/kapaipai-api/internal/notify/mocks"
	"github.com/mong0520/kapaipai-api/internal/store"
	storeMocks "github.com/mong0520/kapaipai-api/internal/store/mocks"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(
	c kapaipai.Catalog,
	s *storeMocks.MockStore,
	n *notifyMocks.MockNotifier,
	opts ...EngineOption,
) *Engine {
	base := []EngineOption{
		WithLogger(quietLogger()),
		WithNowFunc(func() time.Time { return fixedNow }),
	}
	var st store.Store
	if s != nil {
		st = s
	}
	var nt notify.Notifier
	if n != nil {
		nt = n
	}
	return NewEngine(c, st, nt, append(base, opts...)...)
}

func activeListing(seller string, price, stock, credit int) domain.Listing {
	return domain.Listing{
		Price:          price,
		Stock:          stock,
		Condition:      domain.ConditionPerfect,
		SellerNickname: seller,
		SellerArea:     "Taipei",
		Credit:         credit,
		Status:         domain.ListingActive,
	}
}

// fakeCatalog serves canned data and records the peak number of calls in
// flight at once.
type fakeCatalog struct {
	delay    time.Duration
	variants map[string][]domain.CardVariant
	listings map[string][]domain.Listing // by card key
	fail     map[string]error            // by card name or card key

	inFlight atomic.Int32
	peak     atomic.Int32
	mu       sync.Mutex
	calls    int
}

func (f *fakeCatalog) enter() func() {
	n := f.inFlight.Add(1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	time.Sleep(f.delay)
	return func() { f.inFlight.Add(-1) }
}

func (f *fakeCatalog) Search(_ context.Context, name string) ([]domain.CardVariant, error) {
	defer f.enter()()
	if err := f.fail[name]; err != nil {
		return nil, err
	}
	return f.variants[name], nil
}

func (f *fakeCatalog) FetchListings(
	_ context.Context,
	req kapaipai.ListingsRequest,
) (*kapaipai.ListingsResponse, error) {
	defer f.enter()()
	if err := f.fail[req.CardKey]; err != nil {
		return nil, err
	}
	l := f.listings[req.CardKey]
	return &kapaipai.ListingsResponse{Listings: l, Total: len(l)}, nil
}

func (f *fakeCatalog) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	eng := NewEngine(kapaipaiMocks.NewMockCatalog(t), nil, nil)
	assert.Equal(t, defaultWorkers, eng.Workers())
	assert.Equal(t, defaultLeaseTTL, eng.leaseTTL)
	assert.False(t, eng.includeFlawed)
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.notifier, "nil notifier falls back to no-op")
	assert.NotNil(t, eng.leases)
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	urls := kapaipai.URLBuilder{Game: "ws"}
	eng := NewEngine(kapaipaiMocks.NewMockCatalog(t), nil, notifyMocks.NewMockNotifier(t),
		WithLogger(l),
		WithWorkers(3),
		WithIncludeFlawed(true),
		WithLeaseTTL(time.Minute),
		WithURLBuilder(urls),
	)

	assert.Same(t, l, eng.log)
	assert.Equal(t, 3, eng.Workers())
	assert.True(t, eng.includeFlawed)
	assert.Equal(t, time.Minute, eng.leaseTTL)
	assert.Equal(t, urls, eng.urls)
}

func TestNewEngine_IgnoresNonPositiveOptions(t *testing.T) {
	t.Parallel()

	eng := NewEngine(kapaipaiMocks.NewMockCatalog(t), nil, nil,
		WithWorkers(0),
		WithLeaseTTL(-time.Second),
	)
	assert.Equal(t, defaultWorkers, eng.Workers())
	assert.Equal(t, defaultLeaseTTL, eng.leaseTTL)
}

func TestForEach_RespectsWorkerCap(t *testing.T) {
	t.Parallel()

	eng := NewEngine(kapaipaiMocks.NewMockCatalog(t), nil, nil, WithWorkers(2))

	var inFlight, peak atomic.Int32
	var done atomic.Int32
	eng.forEach(10, func(int) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		done.Add(1)
	})

	assert.Equal(t, int32(10), done.Load())
	assert.LessOrEqual(t, peak.Load(), int32(2))
}
