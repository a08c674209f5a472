package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/mong0520/kapaipai-api/internal/metrics"
)

// Scheduler runs the price-check pass periodically. When several replicas
// share a database, the scheduler lock lets only one of them run each pass.
type Scheduler struct {
	cron     *cron.Cron
	engine   *Engine
	log      *slog.Logger
	holder   string
	interval time.Duration
}

// NewScheduler creates a new Scheduler that runs RunPriceCheck every interval.
func NewScheduler(
	eng *Engine,
	interval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:     c,
		engine:   eng,
		log:      log,
		holder:   uuid.NewString(),
		interval: interval,
	}

	if _, err := c.AddFunc(
		"@every "+interval.String(),
		s.runPriceCheck,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "interval", s.interval)
	s.cron.Start()
	s.recordNextRun()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runPriceCheck() {
	defer s.recordNextRun()

	ctx := context.Background()
	ok, err := s.engine.store.AcquireSchedulerLock(ctx, PriceCheckJob, s.holder, s.interval)
	if err != nil {
		s.log.Error("acquiring scheduler lock", "error", err)
		return
	}
	if !ok {
		s.log.Info("scheduled price check skipped, lock held elsewhere")
		return
	}
	defer func() {
		if err := s.engine.store.ReleaseSchedulerLock(ctx, PriceCheckJob, s.holder); err != nil {
			s.log.Warn("releasing scheduler lock", "error", err)
		}
	}()

	s.log.Info("scheduled price check starting")
	if _, err := s.engine.RunPriceCheck(ctx); err != nil {
		s.log.Error("scheduled price check failed", "error", err)
	}
}

func (s *Scheduler) recordNextRun() {
	entries := s.cron.Entries()
	if len(entries) == 0 || entries[0].Next.IsZero() {
		return
	}
	metrics.SchedulerNextRunTimestamp.Set(float64(entries[0].Next.Unix()))
}
