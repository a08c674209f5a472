package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mong0520/kapaipai-api/internal/api/handlers"
	"github.com/mong0520/kapaipai-api/internal/engine"
)

type mockPriceChecker struct {
	summary *engine.PriceCheckSummary
	err     error
}

func (m *mockPriceChecker) RunPriceCheck(_ context.Context) (*engine.PriceCheckSummary, error) {
	return m.summary, m.err
}

func TestPriceCheckHandler_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checker    *mockPriceChecker
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			checker: &mockPriceChecker{summary: &engine.PriceCheckSummary{
				Checked: 4, Failed: 1, Notified: 2, Suppressed: 1,
			}},
			wantStatus: http.StatusOK,
			wantBody:   `"notified":2`,
		},
		{
			name:       "error",
			checker:    &mockPriceChecker{err: errors.New("listing active watches: db down")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "price check failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterTriggerRoutes(api, handlers.NewPriceCheckHandler(tt.checker))

			resp := api.Post("/api/v1/price-check")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
