package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate returns a timeseries panel showing the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return lineSeries("Request Rate", "HTTP requests per second", ThirdWidth).
		WithTarget(PromQuery(`kpp:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// LatencyPercentiles returns a timeseries panel showing p50, p95 and p99
// HTTP request latencies.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const metric = "kpp_http_request_duration_seconds"
	return lineSeries("Latency Percentiles", "HTTP request duration percentiles", ThirdWidth).
		WithTarget(PromQuery(Quantile("0.50", metric), "p50", "A")).
		WithTarget(PromQuery(Quantile("0.95", metric), "p95", "B")).
		WithTarget(PromQuery(Quantile("0.99", metric), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// ErrorRate returns a timeseries panel showing the HTTP 5xx error rate
// as a percentage.
func ErrorRate() *timeseries.PanelBuilder {
	return lineSeries("Error Rate %", "HTTP 5xx responses as percentage of all requests", ThirdWidth).
		WithTarget(PromQuery(
			`kpp:http_errors:rate5m / kpp:http_requests:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
