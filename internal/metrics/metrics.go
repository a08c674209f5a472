// Package metrics defines Prometheus metrics for the kapaipai tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kpp"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Marketplace API metrics.
var (
	MarketplaceCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_calls_total",
		Help:      "Total marketplace API calls by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	MarketplaceCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "marketplace_call_duration_seconds",
		Help:      "Duration of marketplace API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	MarketplaceDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "marketplace_daily_usage",
		Help:      "Marketplace calls made in the current 24-hour window.",
	})

	MarketplaceBudgetHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "marketplace_budget_hits_total",
		Help:      "Total number of calls refused by the daily call budget.",
	})
)

// Multi-card search metrics.
var (
	MultiSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "multi_search_duration_seconds",
		Help:      "Duration of multi-card searches in seconds.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	})

	MultiSearchMatchedSellers = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "multi_search_matched_sellers",
		Help:      "Number of sellers matched per multi-card search.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	})

	MultiSearchCardFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "multi_search_card_failures_total",
		Help:      "Total number of requested cards that could not be resolved.",
	})
)

// Price check metrics.
var (
	PriceCheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "price_check_duration_seconds",
		Help:      "Duration of full price check passes in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	WatchesCheckedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "watches_checked_total",
		Help:      "Total number of watch checks completed.",
	})

	WatchCheckFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "watch_check_failures_total",
		Help:      "Total number of watch checks that failed.",
	})

	WatchChecksInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "watch_checks_in_flight",
		Help:      "Number of watches currently holding a check lease.",
	})

	LastPriceCheckTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_price_check_timestamp",
		Help:      "Unix timestamp of the last completed price check pass.",
	})

	SchedulerNextRunTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_run_timestamp",
		Help:      "Unix timestamp of the next scheduled price check.",
	})
)

// Notification metrics.
var (
	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification delivery calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notifications delivered.",
	})

	NotificationsSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_suppressed_total",
		Help:      "Total number of notifications suppressed as duplicates.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the liveness check is passing.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the readiness check is passing.",
	})
)
