package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mong0520/kapaipai-api/internal/kapaipai"
	kapaipaiMocks "github.com/mong0520/kapaipai-api/internal/kapaipai/mocks"
	"github.com/mong0520/kapaipai-api/internal/metrics"
	"github.com/mong0520/kapaipai-api/internal/notify"
	notifyMocks "github.com/mong0520/kapaipai-api/internal/notify/mocks"
	"github.com/mong0520/kapaipai-api/internal/store"
	storeMocks "github.com/mong0520/kapaipai-api/internal/store/mocks"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

var testURLs = kapaipai.URLBuilder{
	Game:          "ptcg",
	ProductURLTpl: "https://kapaipai.tw/{game}/{card_key}",
	ImageURLTpl:   "https://img.kapaipai.tw/{card_key}.jpg",
}

func expectJobRun(ms *storeMocks.MockStore) {
	ms.EXPECT().InsertJobRun(mock.Anything, PriceCheckJob).Return("run-1", nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Once()
}

func TestCheckWatchByID_SendsAndRecords(t *testing.T) {
	t.Parallel()

	mc := kapaipaiMocks.NewMockCatalog(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(mc, ms, mn, WithURLBuilder(testURLs))

	w := testWatch(5, 100, 0)
	w.OwnerNotificationTarget = "U-line"

	ms.EXPECT().GetWatch(mock.Anything, int64(5)).Return(w, nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(5)).Return(nil, nil).Once()
	mc.EXPECT().FetchListings(mock.Anything, mock.Anything).Return(listingsAt(80, 90), nil).Once()
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.MatchedBy(func(s *domain.PriceSnapshot) bool {
		return s.WatchID == 5 && *s.LowestPrice == 80 && s.BuyableCount == 2
	})).Return(nil).Once()
	mn.EXPECT().SendPriceAlert(mock.Anything, mock.MatchedBy(func(a *notify.AlertPayload) bool {
		return a.Recipient == "U-line" &&
			a.TriggeredPrice == 80 &&
			a.TargetPriceMax == 100 &&
			a.ImageURL == "https://img.kapaipai.tw/ck.jpg" &&
			a.ProductURL == "https://kapaipai.tw/ptcg/ck"
	})).Return(nil).Once()
	ms.EXPECT().InsertNotification(mock.Anything, mock.MatchedBy(func(n *domain.NotificationRecord) bool {
		return n.WatchID == 5 && n.UserID == "u1" && n.TriggeredPrice == 80 &&
			n.TargetPriceMax == 100 && n.Status == domain.NotificationSent &&
			n.SentAt.Equal(fixedNow)
	})).Return(nil).Once()

	before := ptestutil.ToFloat64(metrics.NotificationsSentTotal)

	out, err := eng.CheckWatchByID(t.Context(), 5)
	require.NoError(t, err)
	require.NotNil(t, out.Notification)
	assert.Equal(t, domain.NotificationSent, out.Notification.Status)
	assert.Contains(t, out.Notification.Message, "Current Price: 80 TWD")
	assert.False(t, out.Suppressed)
	assert.GreaterOrEqual(t, ptestutil.ToFloat64(metrics.NotificationsSentTotal), before+1)
}

func TestCheckWatchByID_DeliveryFailureRecordedAsFailed(t *testing.T) {
	t.Parallel()

	mc := kapaipaiMocks.NewMockCatalog(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(mc, ms, mn)

	w := testWatch(5, 100, 0)
	w.ImageURL = "https://stored/image.png"

	ms.EXPECT().GetWatch(mock.Anything, int64(5)).Return(w, nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(5)).Return(nil, nil).Once()
	mc.EXPECT().FetchListings(mock.Anything, mock.Anything).Return(listingsAt(80), nil).Once()
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil).Once()
	mn.EXPECT().SendPriceAlert(mock.Anything, mock.MatchedBy(func(a *notify.AlertPayload) bool {
		return a.ImageURL == "https://stored/image.png"
	})).Return(errors.New("line: 500")).Once()
	ms.EXPECT().InsertNotification(mock.Anything, mock.MatchedBy(func(n *domain.NotificationRecord) bool {
		return n.Status == domain.NotificationFailed
	})).Return(nil).Once()

	out, err := eng.CheckWatchByID(t.Context(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationFailed, out.Notification.Status)
}

func TestCheckWatchByID_Suppressed(t *testing.T) {
	t.Parallel()

	mc := kapaipaiMocks.NewMockCatalog(t)
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(mc, ms, mn)

	w := testWatch(5, 100, 0)
	last := &domain.NotificationRecord{TriggeredPrice: 80, TargetPriceMax: 100}

	ms.EXPECT().GetWatch(mock.Anything, int64(5)).Return(w, nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(5)).Return(last, nil).Once()
	mc.EXPECT().FetchListings(mock.Anything, mock.Anything).Return(listingsAt(80), nil).Once()
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := eng.CheckWatchByID(t.Context(), 5)
	require.NoError(t, err)
	assert.True(t, out.Suppressed)
	assert.Nil(t, out.Notification)
	assert.NotNil(t, out.Snapshot)
}

func TestCheckWatchByID_OutOfRangeIsNotSuppressed(t *testing.T) {
	t.Parallel()

	mc := kapaipaiMocks.NewMockCatalog(t)
	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(mc, ms, notifyMocks.NewMockNotifier(t))

	w := testWatch(6, 100, 0)
	last := &domain.NotificationRecord{TriggeredPrice: 80, TargetPriceMax: 100}

	ms.EXPECT().GetWatch(mock.Anything, int64(6)).Return(w, nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(6)).Return(last, nil).Once()
	mc.EXPECT().FetchListings(mock.Anything, mock.Anything).Return(listingsAt(150), nil).Once()
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := eng.CheckWatchByID(t.Context(), 6)
	require.NoError(t, err)
	assert.False(t, out.Suppressed)
	assert.Nil(t, out.Notification)
}

func TestCheckWatchByID_NotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(kapaipaiMocks.NewMockCatalog(t), ms, nil)

	ms.EXPECT().GetWatch(mock.Anything, int64(9)).Return(nil, store.ErrNotFound).Once()

	_, err := eng.CheckWatchByID(t.Context(), 9)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCheckWatchByID_UpstreamFailureSavesNothing(t *testing.T) {
	t.Parallel()

	mc := kapaipaiMocks.NewMockCatalog(t)
	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(mc, ms, nil)

	ms.EXPECT().GetWatch(mock.Anything, int64(5)).Return(testWatch(5, 100, 0), nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(5)).Return(nil, nil).Once()
	mc.EXPECT().FetchListings(mock.Anything, mock.Anything).
		Return(nil, &kapaipai.UpstreamError{Op: "listings", StatusCode: 502}).Once()

	_, err := eng.CheckWatchByID(t.Context(), 5)
	require.ErrorIs(t, err, kapaipai.ErrUpstream)
}

func TestCheckWatchByID_RefusesOverlap(t *testing.T) {
	t.Parallel()

	mc := kapaipaiMocks.NewMockCatalog(t)
	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(mc, ms, nil)

	w := testWatch(5, 100, 0)
	entered := make(chan struct{})
	release := make(chan struct{})

	ms.EXPECT().GetWatch(mock.Anything, int64(5)).Return(w, nil).Twice()
	ms.EXPECT().LastNotification(mock.Anything, int64(5)).Return(nil, nil)
	mc.EXPECT().FetchListings(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, kapaipai.ListingsRequest) (*kapaipai.ListingsResponse, error) {
			close(entered)
			<-release
			return listingsAt(200), nil
		}).Once()
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil).Once()

	errc := make(chan error, 1)
	go func() {
		_, err := eng.CheckWatchByID(context.Background(), 5)
		errc <- err
	}()
	<-entered

	_, err := eng.CheckWatchByID(t.Context(), 5)
	require.ErrorIs(t, err, ErrCheckInProgress)

	close(release)
	require.NoError(t, <-errc)
	assert.Equal(t, 0, eng.leases.Len(), "lease released after the check")
}

func TestRunPriceCheck_MixedOutcomes(t *testing.T) {
	t.Parallel()

	cat := &fakeCatalog{
		listings: map[string][]domain.Listing{
			"hit":    {activeListing("s", 50, 1, 1)},
			"miss":   {activeListing("s", 500, 1, 1)},
			"repeat": {activeListing("s", 60, 1, 1)},
		},
		fail: map[string]error{"down": errors.New("connection refused")},
	}
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(cat, ms, mn, WithWorkers(2))

	watches := []domain.Watch{
		{ID: 1, UserID: "u", CardKey: "hit", Rare: "R", TargetPriceMax: 100, IsActive: true},
		{ID: 2, UserID: "u", CardKey: "miss", Rare: "R", TargetPriceMax: 100, IsActive: true},
		{ID: 3, UserID: "u", CardKey: "repeat", Rare: "R", TargetPriceMax: 100, IsActive: true},
		{ID: 4, UserID: "u", CardKey: "down", Rare: "R", TargetPriceMax: 100, IsActive: true},
	}

	expectJobRun(ms)
	ms.EXPECT().ListWatches(mock.Anything, mock.MatchedBy(func(q *store.WatchQuery) bool {
		return q.ActiveOnly && q.Offset == 0
	})).Return(watches, len(watches), nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(1)).Return(nil, nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(2)).Return(nil, nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(3)).
		Return(&domain.NotificationRecord{TriggeredPrice: 60, TargetPriceMax: 100}, nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, int64(4)).Return(nil, nil).Once()
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil).Times(3)
	mn.EXPECT().SendPriceAlert(mock.Anything, mock.MatchedBy(func(a *notify.AlertPayload) bool {
		return a.WatchID == 1
	})).Return(nil).Once()
	ms.EXPECT().InsertNotification(mock.Anything, mock.Anything).Return(nil).Once()

	sum, err := eng.RunPriceCheck(t.Context())
	require.NoError(t, err)
	assert.Equal(t, PriceCheckSummary{
		Checked:    3,
		Failed:     1,
		Notified:   1,
		Suppressed: 1,
	}, *sum)
	assert.Positive(t, ptestutil.ToFloat64(metrics.LastPriceCheckTimestamp))
}

func TestPreviewPriceCheck_PersistsNothing(t *testing.T) {
	t.Parallel()

	cat := &fakeCatalog{
		listings: map[string][]domain.Listing{"hit": {activeListing("s", 50, 1, 1)}},
		fail:     map[string]error{"down": errors.New("connection refused")},
	}
	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(cat, ms, notifyMocks.NewMockNotifier(t), WithWorkers(2))

	watches := []domain.Watch{
		{ID: 1, CardKey: "hit", Rare: "R", TargetPriceMax: 100, IsActive: true},
		{ID: 2, CardKey: "down", Rare: "R", TargetPriceMax: 100, IsActive: true},
	}
	ms.EXPECT().ListWatches(mock.Anything, mock.Anything).Return(watches, len(watches), nil).Once()

	results, err := eng.PreviewPriceCheck(t.Context())
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	assert.Equal(t, int64(1), results[0].Snapshot.WatchID)
	assert.Equal(t, 50, *results[0].Snapshot.LowestPrice)
	require.NotNil(t, results[0].Outcome)
	assert.Nil(t, results[0].Outcome.Notification)

	require.Error(t, results[1].Err)
	assert.Nil(t, results[1].Snapshot)
	assert.Nil(t, results[1].Outcome)
	assert.Equal(t, 0, eng.leases.Len())
}

func TestPreviewPriceCheck_ListError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(kapaipaiMocks.NewMockCatalog(t), ms, nil)
	ms.EXPECT().ListWatches(mock.Anything, mock.Anything).Return(nil, 0, errors.New("db down")).Once()

	_, err := eng.PreviewPriceCheck(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing active watches")
}

func TestRunPriceCheck_ListError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(kapaipaiMocks.NewMockCatalog(t), ms, nil)

	ms.EXPECT().InsertJobRun(mock.Anything, PriceCheckJob).Return("run-1", nil).Once()
	ms.EXPECT().ListWatches(mock.Anything, mock.Anything).Return(nil, 0, errors.New("db down")).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "failed", mock.Anything, 0).Return(nil).Once()

	_, err := eng.RunPriceCheck(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing active watches")
}

func TestRunPriceCheck_JobRunInsertFailureStillChecks(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(kapaipaiMocks.NewMockCatalog(t), ms, nil)

	ms.EXPECT().InsertJobRun(mock.Anything, PriceCheckJob).Return("", errors.New("no table")).Once()
	ms.EXPECT().ListWatches(mock.Anything, mock.Anything).Return(nil, 0, nil).Once()

	sum, err := eng.RunPriceCheck(t.Context())
	require.NoError(t, err)
	assert.Equal(t, PriceCheckSummary{}, *sum)
}

func TestRunPriceCheck_PagesThroughWatches(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	cat := &fakeCatalog{listings: map[string][]domain.Listing{}}
	eng := newTestEngine(cat, ms, nil)

	first := make([]domain.Watch, watchPageSize)
	for i := range first {
		first[i] = domain.Watch{ID: int64(i + 1), CardKey: "k", Rare: "R", TargetPriceMax: 1}
	}
	second := []domain.Watch{{ID: watchPageSize + 1, CardKey: "k", Rare: "R", TargetPriceMax: 1}}
	total := len(first) + len(second)

	expectJobRun(ms)
	ms.EXPECT().ListWatches(mock.Anything, mock.MatchedBy(func(q *store.WatchQuery) bool {
		return q.Offset == 0
	})).Return(first, total, nil).Once()
	ms.EXPECT().ListWatches(mock.Anything, mock.MatchedBy(func(q *store.WatchQuery) bool {
		return q.Offset == watchPageSize
	})).Return(second, total, nil).Once()
	ms.EXPECT().LastNotification(mock.Anything, mock.Anything).Return(nil, nil).Times(total)
	ms.EXPECT().InsertSnapshot(mock.Anything, mock.Anything).Return(nil).Times(total)

	sum, err := eng.RunPriceCheck(t.Context())
	require.NoError(t, err)
	assert.Equal(t, total, sum.Checked)
}

func TestLeaseExpires(t *testing.T) {
	t.Parallel()

	now := fixedNow
	eng := NewEngine(kapaipaiMocks.NewMockCatalog(t), nil, nil,
		WithLogger(quietLogger()),
		WithNowFunc(func() time.Time { return now }),
		WithLeaseTTL(time.Minute),
	)

	require.True(t, eng.leases.SetIfAbsent(1, "stale", eng.leaseTTL))
	assert.False(t, eng.leases.SetIfAbsent(1, "other", eng.leaseTTL))

	now = now.Add(2 * time.Minute)
	assert.True(t, eng.leases.SetIfAbsent(1, "other", eng.leaseTTL), "abandoned lease expires")
}
