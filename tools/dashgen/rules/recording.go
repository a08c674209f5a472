package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newRule("kpp-recording-rules", "kpp-recording", []Rule{
		{
			Record: "kpp:http_requests:rate5m",
			Expr:   `sum(rate(kpp_http_requests_total[5m]))`,
		},
		{
			Record: "kpp:http_errors:rate5m",
			Expr:   `sum(rate(kpp_http_requests_total{status=~"5.."}[5m]))`,
		},
		{
			Record: "kpp:marketplace_calls:rate5m",
			Expr:   `sum(rate(kpp_marketplace_calls_total[5m]))`,
		},
		{
			Record: "kpp:marketplace_errors:rate5m",
			Expr:   `sum(rate(kpp_marketplace_calls_total{outcome!="ok"}[5m]))`,
		},
		{
			Record: "kpp:watch_check_failures:rate5m",
			Expr:   `sum(rate(kpp_watch_check_failures_total[5m]))`,
		},
		{
			Record: "kpp:notification_duration:p95_5m",
			Expr:   `histogram_quantile(0.95, sum(rate(kpp_notification_duration_seconds_bucket[5m])) by (le))`,
		},
	})
}
