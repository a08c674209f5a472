// Package store defines the datastore abstraction for the kapaipai tracker.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// WatchQuery defines optional filters for watch queries.
type WatchQuery struct {
	UserID     *string
	CardKey    *string
	ActiveOnly bool
	Limit      int // default 50
	Offset     int
}

// Store defines all data access operations for the kapaipai tracker.
type Store interface {
	// Watches
	CreateWatch(ctx context.Context, w *domain.Watch) error
	GetWatch(ctx context.Context, id int64) (*domain.Watch, error)
	ListWatches(ctx context.Context, q *WatchQuery) ([]domain.Watch, int, error)
	UpdateWatch(ctx context.Context, w *domain.Watch) error
	DeleteWatch(ctx context.Context, id int64) error
	SetWatchActive(ctx context.Context, id int64, active bool) error

	// Snapshots
	InsertSnapshot(ctx context.Context, s *domain.PriceSnapshot) error
	LatestSnapshot(ctx context.Context, watchID int64) (*domain.PriceSnapshot, error)
	ListSnapshots(ctx context.Context, watchID int64, limit int) ([]domain.PriceSnapshot, error)

	// Notifications
	LastNotification(ctx context.Context, watchID int64) (*domain.NotificationRecord, error)
	InsertNotification(ctx context.Context, n *domain.NotificationRecord) error
	ListNotifications(ctx context.Context, userID string, limit int) ([]domain.NotificationRecord, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
