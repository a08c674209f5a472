// Package engine orchestrates multi-card matching and watch price checks
// on top of the marketplace catalog, the store and the notifier.
package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	"github.com/mong0520/kapaipai-api/internal/notify"
	"github.com/mong0520/kapaipai-api/internal/store"
	"github.com/mong0520/kapaipai-api/pkg/ttlstore"
)

const (
	defaultWorkers  = 8
	defaultLeaseTTL = 2 * time.Minute
)

var (
	// ErrBadRequest is returned when a caller-supplied batch is malformed or
	// exceeds the request cap. No marketplace call is made.
	ErrBadRequest = errors.New("bad request")

	// ErrCheckInProgress is returned when a check for the same watch is
	// already running.
	ErrCheckInProgress = errors.New("check already in progress")
)

// Engine runs multi-card matches and price checks.
type Engine struct {
	catalog  kapaipai.Catalog
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger

	urls          kapaipai.URLBuilder
	workers       int
	includeFlawed bool
	leaseTTL      time.Duration
	leases        *ttlstore.Store[int64, string]
	nowFunc       func() time.Time
}

// NewEngine creates a new Engine with injected dependencies. The store may
// be nil for callers that only run matches or stateless checks; a nil
// notifier logs alerts instead of delivering them.
func NewEngine(
	c kapaipai.Catalog,
	s store.Store,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		catalog:  c,
		store:    s,
		notifier: n,
		log:      slog.Default(),
		workers:  defaultWorkers,
		leaseTTL: defaultLeaseTTL,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.notifier == nil {
		eng.notifier = notify.NewNoOpNotifier(eng.log)
	}
	eng.leases = ttlstore.New[int64, string](
		ttlstore.WithNowFunc(eng.nowFunc),
		ttlstore.WithSweepInterval(eng.leaseTTL),
	)
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithWorkers caps the number of concurrent marketplace calls per phase.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithIncludeFlawed admits non-perfect conditions into buyable listings.
func WithIncludeFlawed(b bool) EngineOption {
	return func(e *Engine) {
		e.includeFlawed = b
	}
}

// WithLeaseTTL bounds how long a per-watch check lease is held if its
// holder never releases it.
func WithLeaseTTL(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.leaseTTL = d
		}
	}
}

// WithURLBuilder sets the templates used for alert image and product links.
func WithURLBuilder(b kapaipai.URLBuilder) EngineOption {
	return func(e *Engine) {
		e.urls = b
	}
}

// WithNowFunc overrides the clock for testing.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// Workers returns the configured concurrency cap.
func (eng *Engine) Workers() int {
	return eng.workers
}
