package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mong0520/kapaipai-api/internal/api/handlers"
	"github.com/mong0520/kapaipai-api/internal/engine"
	"github.com/mong0520/kapaipai-api/internal/store"
	storeMocks "github.com/mong0520/kapaipai-api/internal/store/mocks"
	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

type mockChecker struct {
	outcome *engine.WatchOutcome
	err     error
}

func (m *mockChecker) CheckWatchByID(_ context.Context, _ int64) (*engine.WatchOutcome, error) {
	return m.outcome, m.err
}

func notFound(id int64) error {
	return fmt.Errorf("watch %d: %w", id, store.ErrNotFound)
}

func newWatchAPI(t *testing.T, ms *storeMocks.MockStore, c handlers.WatchChecker) humatest.TestAPI {
	t.Helper()

	if c == nil {
		c = &mockChecker{}
	}
	_, api := humatest.New(t)
	handlers.RegisterWatchRoutes(api, handlers.NewWatchHandler(ms, c))
	return api
}

func sampleWatch() *domain.Watch {
	return &domain.Watch{
		ID:             1,
		UserID:         "U1",
		CardKey:        "K1",
		CardName:       "皮卡丘",
		Rare:           "SR",
		PackID:         "SV1",
		TargetPriceMax: 200,
		IsActive:       true,
	}
}

func TestWatchHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns watches",
			path: "/api/v1/watches",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListWatches(mock.Anything, &store.WatchQuery{}).
					Return([]domain.Watch{*sampleWatch()}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name: "filters by user and active state",
			path: "/api/v1/watches?user_id=U1&active_only=true&limit=10&offset=20",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListWatches(mock.Anything, mock.MatchedBy(func(q *store.WatchQuery) bool {
						return q.UserID != nil && *q.UserID == "U1" &&
							q.CardKey == nil && q.ActiveOnly &&
							q.Limit == 10 && q.Offset == 20
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"watches":[]`,
		},
		{
			name: "store error",
			path: "/api/v1/watches",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListWatches(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing watches`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newWatchAPI(t, ms, nil)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestWatchHandler_Get(t *testing.T) {
	t.Parallel()

	low := 180
	tests := []struct {
		name       string
		id         int64
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found with snapshot",
			id:   1,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetWatch(mock.Anything, int64(1)).Return(sampleWatch(), nil).Once()
				m.EXPECT().LatestSnapshot(mock.Anything, int64(1)).
					Return(&domain.PriceSnapshot{WatchID: 1, LowestPrice: &low}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"latest_snapshot":{`,
		},
		{
			name: "found without snapshot",
			id:   1,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetWatch(mock.Anything, int64(1)).Return(sampleWatch(), nil).Once()
				m.EXPECT().LatestSnapshot(mock.Anything, int64(1)).Return(nil, notFound(1)).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"card_key":"K1"`,
		},
		{
			name: "not found",
			id:   9,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetWatch(mock.Anything, int64(9)).Return(nil, notFound(9)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newWatchAPI(t, ms, nil)

			resp := api.Get(fmt.Sprintf("/api/v1/watches/%d", tt.id))
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestWatchHandler_Create(t *testing.T) {
	t.Parallel()

	valid := map[string]any{
		"user_id":      "U1",
		"card_key":     "K1",
		"card_name":    "皮卡丘",
		"rare":         "SR",
		"pack_id":      "SV1",
		"target_price": 200,
	}
	with := func(k string, v any) map[string]any {
		m := make(map[string]any, len(valid)+1)
		for kk, vv := range valid {
			m[kk] = vv
		}
		m[k] = v
		return m
	}
	without := func(k string) map[string]any {
		m := with("x", nil)
		delete(m, "x")
		delete(m, k)
		return m
	}

	tests := []struct {
		name       string
		body       any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid watch",
			body: valid,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateWatch(mock.Anything, mock.MatchedBy(func(w *domain.Watch) bool {
						return w.UserID == "U1" && w.CardKey == "K1" &&
							w.TargetPriceMax == 200 && w.TargetPriceMin == 0 && w.IsActive
					})).
					RunAndReturn(func(_ context.Context, w *domain.Watch) error {
						w.ID = 7
						return nil
					}).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":7`,
		},
		{
			name:       "missing card key returns 422",
			body:       without("card_key"),
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `card_key`,
		},
		{
			name:       "negative target returns 422",
			body:       with("target_price", -1),
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "inverted range returns 400",
			body:       with("target_price_min", 500),
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "target_price_min",
		},
		{
			name: "store error",
			body: valid,
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					CreateWatch(mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "creating watch",
		},
		{
			name:       "invalid JSON",
			body:       strings.NewReader(`{invalid}`),
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newWatchAPI(t, ms, nil)

			resp := api.Post("/api/v1/watches", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestWatchHandler_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "updates targets and state",
			body: map[string]any{"target_price": 150, "target_price_min": 100, "is_active": false},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetWatch(mock.Anything, int64(1)).Return(sampleWatch(), nil).Once()
				m.EXPECT().
					UpdateWatch(mock.Anything, mock.MatchedBy(func(w *domain.Watch) bool {
						return w.ID == 1 && w.TargetPriceMax == 150 &&
							w.TargetPriceMin == 100 && !w.IsActive && w.CardKey == "K1"
					})).
					Return(nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "floor above existing ceiling",
			body: map[string]any{"target_price_min": 300},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetWatch(mock.Anything, int64(1)).Return(sampleWatch(), nil).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing watch",
			body: map[string]any{"target_price": 150},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetWatch(mock.Anything, int64(1)).Return(nil, notFound(1)).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newWatchAPI(t, ms, nil)

			resp := api.Patch("/api/v1/watches/1", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestWatchHandler_SetActive(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().SetWatchActive(mock.Anything, int64(1), false).Return(nil).Once()
	api := newWatchAPI(t, ms, nil)

	resp := api.Put("/api/v1/watches/1/active", map[string]any{"active": false})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "updated")
}

func TestWatchHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "success",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().DeleteWatch(mock.Anything, int64(1)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().DeleteWatch(mock.Anything, int64(1)).Return(notFound(1)).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().DeleteWatch(mock.Anything, int64(1)).Return(errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			api := newWatchAPI(t, ms, nil)

			resp := api.Delete("/api/v1/watches/1")
			require.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestWatchHandler_Check(t *testing.T) {
	t.Parallel()

	low := 150
	tests := []struct {
		name       string
		checker    *mockChecker
		wantStatus int
		wantBody   string
	}{
		{
			name: "sent notification",
			checker: &mockChecker{outcome: &engine.WatchOutcome{
				WatchID:  1,
				Snapshot: &domain.PriceSnapshot{WatchID: 1, LowestPrice: &low},
				Notification: &domain.NotificationRecord{
					WatchID: 1, TriggeredPrice: 150, Status: domain.NotificationSent,
				},
			}},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"sent"`,
		},
		{
			name:       "watch missing",
			checker:    &mockChecker{err: notFound(1)},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "check already running",
			checker:    &mockChecker{err: fmt.Errorf("watch 1: %w", engine.ErrCheckInProgress)},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "marketplace down",
			checker:    &mockChecker{err: fmt.Errorf("fetching listings: %w", errMarketplaceDown)},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newWatchAPI(t, storeMocks.NewMockStore(t), tt.checker)

			resp := api.Post("/api/v1/watches/1/check")
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestWatchHandler_Snapshots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		wantLimit int
	}{
		{name: "default limit", path: "/api/v1/watches/1/snapshots", wantLimit: 50},
		{name: "explicit limit", path: "/api/v1/watches/1/snapshots?limit=5", wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().ListSnapshots(mock.Anything, int64(1), tt.wantLimit).Return(nil, nil).Once()
			api := newWatchAPI(t, ms, nil)

			resp := api.Get(tt.path)
			require.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))
		})
	}
}
