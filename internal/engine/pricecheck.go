package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	"github.com/mong0520/kapaipai-api/internal/metrics"
	"github.com/mong0520/kapaipai-api/internal/notify"
	"github.com/mong0520/kapaipai-api/internal/store"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// PriceCheckJob is the job name recorded in job_runs and scheduler locks.
const PriceCheckJob = "price_check"

const watchPageSize = 500

// WatchOutcome is the persisted result of checking one watch.
type WatchOutcome struct {
	WatchID      int64                      `json:"watch_id"`
	Snapshot     *domain.PriceSnapshot      `json:"snapshot,omitempty"`
	Notification *domain.NotificationRecord `json:"notification,omitempty"`
	Suppressed   bool                       `json:"suppressed"`
}

// PriceCheckSummary counts the outcomes of a full price-check pass.
type PriceCheckSummary struct {
	Checked    int `json:"checked"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
	Notified   int `json:"notified"`
	Suppressed int `json:"suppressed"`
}

// RunPriceCheck checks every active watch, persists snapshots and delivers
// deduplicated notifications. Individual watch failures are logged and
// counted; only failing to list watches aborts the pass.
func (eng *Engine) RunPriceCheck(ctx context.Context) (*PriceCheckSummary, error) {
	start := time.Now()
	defer func() {
		metrics.PriceCheckDuration.Observe(time.Since(start).Seconds())
	}()

	runID, err := eng.store.InsertJobRun(ctx, PriceCheckJob)
	if err != nil {
		eng.log.Warn("recording job run", "job", PriceCheckJob, "error", err)
	}

	watches, err := eng.activeWatches(ctx)
	if err != nil {
		eng.completeJobRun(ctx, runID, err, 0)
		return nil, err
	}
	eng.log.Info("price check starting", "watches", len(watches))

	var sum PriceCheckSummary
	for _, res := range eng.checkEach(ctx, watches, eng.checkAndRecord) {
		switch {
		case errors.Is(res.Err, ErrCheckInProgress):
			sum.Skipped++
		case res.Err != nil:
			sum.Failed++
			eng.log.Error("watch check failed", "watch_id", res.Watch.ID, "error", res.Err)
		default:
			sum.Checked++
			if n := res.Outcome.Notification; n != nil && n.Status == domain.NotificationSent {
				sum.Notified++
			}
			if res.Outcome.Suppressed {
				sum.Suppressed++
			}
		}
	}

	metrics.LastPriceCheckTimestamp.SetToCurrentTime()
	eng.completeJobRun(ctx, runID, nil, sum.Checked)
	eng.log.Info("price check complete",
		"checked", sum.Checked,
		"failed", sum.Failed,
		"skipped", sum.Skipped,
		"notified", sum.Notified,
		"suppressed", sum.Suppressed,
		"duration", time.Since(start),
	)
	return &sum, nil
}

// PreviewPriceCheck checks every active watch without taking leases,
// recording snapshots or sending notifications.
func (eng *Engine) PreviewPriceCheck(ctx context.Context) ([]WatchCheck, error) {
	watches, err := eng.activeWatches(ctx)
	if err != nil {
		return nil, err
	}
	return eng.CheckAll(ctx, watches), nil
}

// CheckWatchByID runs the persisted check flow for a single watch.
func (eng *Engine) CheckWatchByID(ctx context.Context, id int64) (*WatchOutcome, error) {
	w, err := eng.store.GetWatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return eng.checkAndRecord(ctx, w)
}

func (eng *Engine) activeWatches(ctx context.Context) ([]domain.Watch, error) {
	var all []domain.Watch
	for offset := 0; ; offset += watchPageSize {
		page, total, err := eng.store.ListWatches(ctx, &store.WatchQuery{
			ActiveOnly: true,
			Limit:      watchPageSize,
			Offset:     offset,
		})
		if err != nil {
			return nil, fmt.Errorf("listing active watches: %w", err)
		}
		all = append(all, page...)
		if len(page) < watchPageSize || len(all) >= total {
			return all, nil
		}
	}
}

// checkAndRecord holds the watch's lease for the whole check so a manual
// check cannot overlap the scheduled pass.
func (eng *Engine) checkAndRecord(ctx context.Context, w *domain.Watch) (*WatchOutcome, error) {
	token := uuid.NewString()
	if !eng.leases.SetIfAbsent(w.ID, token, eng.leaseTTL) {
		return nil, fmt.Errorf("watch %d: %w", w.ID, ErrCheckInProgress)
	}
	metrics.WatchChecksInFlight.Set(float64(eng.leases.Len()))
	defer func() {
		eng.leases.DeleteIf(w.ID, func(held string) bool { return held == token })
		metrics.WatchChecksInFlight.Set(float64(eng.leases.Len()))
	}()

	last, err := eng.store.LastNotification(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("loading last notification: %w", err)
	}

	snap, cand, err := eng.CheckWatch(ctx, w, last)
	if err != nil {
		metrics.WatchCheckFailuresTotal.Inc()
		return nil, err
	}
	metrics.WatchesCheckedTotal.Inc()
	suppressed := cand == nil && Evaluate(w, snap, nil) != nil

	if err := eng.store.InsertSnapshot(ctx, snap); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}

	out := &WatchOutcome{WatchID: w.ID, Snapshot: snap, Suppressed: suppressed}
	if suppressed {
		metrics.NotificationsSuppressedTotal.Inc()
	}
	if cand == nil {
		return out, nil
	}

	rec, err := eng.deliver(ctx, w, cand)
	if err != nil {
		return nil, err
	}
	out.Notification = rec
	return out, nil
}

// deliver sends the candidate and records the attempt whatever its outcome.
func (eng *Engine) deliver(
	ctx context.Context,
	w *domain.Watch,
	cand *domain.NotificationCandidate,
) (*domain.NotificationRecord, error) {
	req := kapaipai.ListingsRequest{
		CardKey:    w.CardKey,
		Rare:       w.Rare,
		PackID:     w.PackID,
		PackCardID: w.PackCardID,
	}
	imageURL := w.ImageURL
	if imageURL == "" {
		imageURL = eng.urls.ImageURL(req)
	}
	payload := &notify.AlertPayload{
		Recipient:      w.OwnerNotificationTarget,
		WatchID:        w.ID,
		CardName:       w.CardName,
		PackName:       w.PackName,
		PackID:         w.PackID,
		Rare:           w.Rare,
		TargetPriceMax: cand.TargetPriceMax,
		TargetPriceMin: cand.TargetPriceMin,
		TriggeredPrice: cand.TriggeredPrice,
		ImageURL:       imageURL,
		ProductURL:     eng.urls.ProductURL(req),
	}

	rec := &domain.NotificationRecord{
		WatchID:        w.ID,
		UserID:         w.UserID,
		TriggeredPrice: cand.TriggeredPrice,
		TargetPriceMax: cand.TargetPriceMax,
		Message:        notify.FormatMessage(payload),
		Status:         domain.NotificationSent,
		SentAt:         eng.nowFunc().UTC(),
	}
	if err := eng.notifier.SendPriceAlert(ctx, payload); err != nil {
		rec.Status = domain.NotificationFailed
		metrics.NotificationFailuresTotal.Inc()
		eng.log.Error("sending price alert", "watch_id", w.ID, "error", err)
	} else {
		metrics.NotificationsSentTotal.Inc()
	}

	if err := eng.store.InsertNotification(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving notification: %w", err)
	}
	return rec, nil
}

func (eng *Engine) completeJobRun(ctx context.Context, runID string, runErr error, rows int) {
	if runID == "" {
		return
	}
	status, errText := "succeeded", ""
	if runErr != nil {
		status, errText = "failed", runErr.Error()
	}
	if err := eng.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
		eng.log.Warn("completing job run", "id", runID, "error", err)
	}
}
