package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// PendingMigrations lists migrations that Migrate would apply.
func (s *PostgresStore) PendingMigrations(ctx context.Context) ([]string, error) {
	return PendingMigrations(ctx, s.pool)
}

// CreateWatch inserts a watch, or re-targets and re-activates the existing
// watch for the same (user, card, rare, pack).
func (s *PostgresStore) CreateWatch(ctx context.Context, w *domain.Watch) error {
	args := pgx.NamedArgs{
		"user_id":             w.UserID,
		"card_key":            w.CardKey,
		"card_name":           w.CardName,
		"pack_id":             w.PackID,
		"pack_name":           w.PackName,
		"pack_card_id":        w.PackCardID,
		"rare":                w.Rare,
		"image_url":           w.ImageURL,
		"target_price":        w.TargetPriceMax,
		"target_price_min":    w.TargetPriceMin,
		"notification_target": w.OwnerNotificationTarget,
	}

	if err := s.pool.QueryRow(ctx, queryCreateWatch, args).Scan(
		&w.ID, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return fmt.Errorf("creating watch: %w", err)
	}
	return nil
}

// GetWatch retrieves a watch by its ID.
func (s *PostgresStore) GetWatch(ctx context.Context, id int64) (*domain.Watch, error) {
	w := &domain.Watch{}
	err := scanWatch(s.pool.QueryRow(ctx, queryGetWatch, id), w)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("watch %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting watch: %w", err)
	}
	return w, nil
}

// ListWatches queries watches with optional filters, returning results and total count.
func (s *PostgresStore) ListWatches(
	ctx context.Context,
	q *WatchQuery,
) ([]domain.Watch, int, error) {
	if q == nil {
		q = &WatchQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting watches: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying watches: %w", err)
	}
	defer rows.Close()

	var watches []domain.Watch
	for rows.Next() {
		var w domain.Watch
		if err := scanWatch(rows, &w); err != nil {
			return nil, 0, fmt.Errorf("scanning watch: %w", err)
		}
		watches = append(watches, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating watches: %w", err)
	}

	return watches, total, nil
}

// UpdateWatch updates the mutable fields of an existing watch.
func (s *PostgresStore) UpdateWatch(ctx context.Context, w *domain.Watch) error {
	args := pgx.NamedArgs{
		"id":                  w.ID,
		"target_price":        w.TargetPriceMax,
		"target_price_min":    w.TargetPriceMin,
		"is_active":           w.IsActive,
		"notification_target": w.OwnerNotificationTarget,
	}

	err := s.pool.QueryRow(ctx, queryUpdateWatch, args).Scan(&w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("watch %d: %w", w.ID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("updating watch: %w", err)
	}
	return nil
}

// DeleteWatch removes a watch and, by cascade, its snapshots and notifications.
func (s *PostgresStore) DeleteWatch(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, queryDeleteWatch, id)
	if err != nil {
		return fmt.Errorf("deleting watch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("watch %d: %w", id, ErrNotFound)
	}
	return nil
}

// SetWatchActive activates or deactivates a watch.
func (s *PostgresStore) SetWatchActive(ctx context.Context, id int64, active bool) error {
	tag, err := s.pool.Exec(ctx, querySetWatchActive, id, active)
	if err != nil {
		return fmt.Errorf("setting watch active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("watch %d: %w", id, ErrNotFound)
	}
	return nil
}

// InsertSnapshot persists a price snapshot and sets its ID.
func (s *PostgresStore) InsertSnapshot(ctx context.Context, snap *domain.PriceSnapshot) error {
	if snap.ObservedAt.IsZero() {
		snap.ObservedAt = time.Now().UTC()
	}
	if err := s.pool.QueryRow(ctx, queryInsertSnapshot,
		snap.WatchID, snap.LowestPrice, toNullDecimal(snap.AveragePrice),
		snap.BuyableCount, snap.TotalCount, snap.ObservedAt,
	).Scan(&snap.ID); err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the newest snapshot for a watch, or ErrNotFound.
func (s *PostgresStore) LatestSnapshot(
	ctx context.Context,
	watchID int64,
) (*domain.PriceSnapshot, error) {
	snap := &domain.PriceSnapshot{}
	err := scanSnapshot(s.pool.QueryRow(ctx, queryLatestSnapshot, watchID), snap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("snapshot for watch %d: %w", watchID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting latest snapshot: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns a watch's snapshots, newest first.
func (s *PostgresStore) ListSnapshots(
	ctx context.Context,
	watchID int64,
	limit int,
) ([]domain.PriceSnapshot, error) {
	rows, err := s.pool.Query(ctx, queryListSnapshots, watchID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.PriceSnapshot
	for rows.Next() {
		var snap domain.PriceSnapshot
		if err := scanSnapshot(rows, &snap); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// LastNotification returns the most recent notification for a watch, or
// nil when none has ever been recorded.
func (s *PostgresStore) LastNotification(
	ctx context.Context,
	watchID int64,
) (*domain.NotificationRecord, error) {
	n := &domain.NotificationRecord{}
	err := scanNotification(s.pool.QueryRow(ctx, queryLastNotification, watchID), n)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting last notification: %w", err)
	}
	return n, nil
}

// InsertNotification persists a notification record and sets its ID.
func (s *PostgresStore) InsertNotification(ctx context.Context, n *domain.NotificationRecord) error {
	if n.SentAt.IsZero() {
		n.SentAt = time.Now().UTC()
	}
	if err := s.pool.QueryRow(ctx, queryInsertNotification,
		n.WatchID, n.UserID, n.TriggeredPrice, n.TargetPriceMax,
		n.Message, string(n.Status), n.SentAt,
	).Scan(&n.ID); err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

// ListNotifications returns recent notifications, newest first. An empty
// userID lists notifications for every user.
func (s *PostgresStore) ListNotifications(
	ctx context.Context,
	userID string,
	limit int,
) ([]domain.NotificationRecord, error) {
	rows, err := s.pool.Query(ctx, queryListNotifications, userID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.NotificationRecord
	for rows.Next() {
		var n domain.NotificationRecord
		if err := scanNotification(rows, &n); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// AcquireSchedulerLock takes the named lock for holder unless another
// holder's lease has not yet expired.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanWatch(row scannable, w *domain.Watch) error {
	return row.Scan(
		&w.ID, &w.UserID, &w.CardKey, &w.CardName, &w.PackID, &w.PackName,
		&w.PackCardID, &w.Rare, &w.ImageURL, &w.TargetPriceMax, &w.TargetPriceMin,
		&w.IsActive, &w.OwnerNotificationTarget, &w.CreatedAt, &w.UpdatedAt,
	)
}

func scanSnapshot(row scannable, snap *domain.PriceSnapshot) error {
	var avg decimal.NullDecimal
	if err := row.Scan(
		&snap.ID, &snap.WatchID, &snap.LowestPrice, &avg,
		&snap.BuyableCount, &snap.TotalCount, &snap.ObservedAt,
	); err != nil {
		return err
	}
	if avg.Valid {
		snap.AveragePrice = &avg.Decimal
	}
	return nil
}

func scanNotification(row scannable, n *domain.NotificationRecord) error {
	var status string
	if err := row.Scan(
		&n.ID, &n.WatchID, &n.UserID, &n.TriggeredPrice, &n.TargetPriceMax,
		&n.Message, &status, &n.SentAt,
	); err != nil {
		return err
	}
	n.Status = domain.NotificationStatus(status)
	return nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}
