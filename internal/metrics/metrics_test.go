package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, MarketplaceCallsTotal)
	assert.NotNil(t, MarketplaceCallDuration)
	assert.NotNil(t, MarketplaceDailyUsage)
	assert.NotNil(t, MarketplaceBudgetHits)
	assert.NotNil(t, MultiSearchDuration)
	assert.NotNil(t, MultiSearchMatchedSellers)
	assert.NotNil(t, MultiSearchCardFailuresTotal)
	assert.NotNil(t, PriceCheckDuration)
	assert.NotNil(t, WatchesCheckedTotal)
	assert.NotNil(t, WatchCheckFailuresTotal)
	assert.NotNil(t, WatchChecksInFlight)
	assert.NotNil(t, LastPriceCheckTimestamp)
	assert.NotNil(t, SchedulerNextRunTimestamp)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, NotificationsSentTotal)
	assert.NotNil(t, NotificationsSuppressedTotal)
	assert.NotNil(t, NotificationFailuresTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
}

func TestMarketplaceCallsTotal_Labels(t *testing.T) {
	t.Parallel()

	c := MarketplaceCallsTotal.WithLabelValues("metrics_test", "ok")
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 0.001)
}
