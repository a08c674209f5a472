package main

import "errors"

// KnownMetrics is the set of metric names exported by kapaipai-tracker plus
// the recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"kpp_http_request_duration_seconds": true,
	"kpp_http_requests_total":           true,

	// Health metrics.
	"kpp_healthz_up": true,
	"kpp_readyz_up":  true,

	// Marketplace metrics.
	"kpp_marketplace_calls_total":           true,
	"kpp_marketplace_call_duration_seconds": true,
	"kpp_marketplace_daily_usage":           true,
	"kpp_marketplace_budget_hits_total":     true,

	// Multi-card search metrics.
	"kpp_multi_search_duration_seconds":    true,
	"kpp_multi_search_matched_sellers":     true,
	"kpp_multi_search_card_failures_total": true,

	// Price check metrics.
	"kpp_price_check_duration_seconds": true,
	"kpp_watches_checked_total":        true,
	"kpp_watch_check_failures_total":   true,
	"kpp_watch_checks_in_flight":       true,
	"kpp_last_price_check_timestamp":   true,
	"kpp_scheduler_next_run_timestamp": true,

	// Notification metrics.
	"kpp_notification_duration_seconds":  true,
	"kpp_notifications_sent_total":       true,
	"kpp_notifications_suppressed_total": true,
	"kpp_notification_failures_total":    true,

	// Recording rules.
	"kpp:http_requests:rate5m":         true,
	"kpp:http_errors:rate5m":           true,
	"kpp:marketplace_calls:rate5m":     true,
	"kpp:marketplace_errors:rate5m":    true,
	"kpp:watch_check_failures:rate5m":  true,
	"kpp:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
