package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// MarketplaceCallsRate returns a timeseries panel showing kapaipai.tw calls
// per second split by endpoint and outcome.
func MarketplaceCallsRate() *timeseries.PanelBuilder {
	return lineSeries("Marketplace Calls", "kapaipai.tw calls per second by endpoint and outcome", ThirdWidth).
		WithTarget(PromQuery(
			`sum(rate(kpp_marketplace_calls_total{job="`+Job+`"}[5m])) by (endpoint, outcome)`,
			"{{endpoint}} {{outcome}}", "A",
		)).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// MarketplaceLatency returns a timeseries panel showing the p95 latency of
// each marketplace endpoint.
func MarketplaceLatency() *timeseries.PanelBuilder {
	return lineSeries("Marketplace Latency (p95)", "95th percentile kapaipai.tw call duration", ThirdWidth).
		WithTarget(PromQuery(
			Quantile("0.95", "kpp_marketplace_call_duration_seconds", "endpoint"),
			"{{endpoint}}", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(2, 8)).
		ColorScheme(ColorSchemePaletteClassic())
}

// MarketplaceErrorRatio returns a timeseries panel showing the share of
// marketplace calls that failed.
func MarketplaceErrorRatio() *timeseries.PanelBuilder {
	return lineSeries("Marketplace Error %", "Upstream and protocol errors as percentage of calls", ThirdWidth).
		WithTarget(PromQuery(
			`kpp:marketplace_errors:rate5m / kpp:marketplace_calls:rate5m * 100`,
			"error %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(5, 20)).
		ColorScheme(ColorSchemeThresholds())
}

// DailyUsage returns a stat panel showing marketplace calls made in the
// current 24-hour budget window.
func DailyUsage() *stat.PanelBuilder {
	return valueStat("Daily Calls", "Marketplace calls in the current 24h budget window").
		WithTarget(PromQuery(`kpp_marketplace_daily_usage{job="`+Job+`"}`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// BudgetHits returns a stat panel showing calls refused by the daily budget.
func BudgetHits() *stat.PanelBuilder {
	return valueStat("Budget Refusals (24h)", "Marketplace calls refused by the daily call budget").
		WithTarget(PromQuery(`increase(kpp_marketplace_budget_hits_total{job="`+Job+`"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground)
}

// MultiSearchDuration returns a timeseries panel showing multi-card search
// latency percentiles.
func MultiSearchDuration() *timeseries.PanelBuilder {
	const metric = "kpp_multi_search_duration_seconds"
	return lineSeries("Multi-Search Duration", "Multi-card search latency", ThirdWidth).
		WithTarget(PromQuery(Quantile("0.50", metric), "p50", "A")).
		WithTarget(PromQuery(Quantile("0.95", metric), "p95", "B")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(10, 30)).
		ColorScheme(ColorSchemePaletteClassic())
}

// MatchedSellers returns a timeseries panel showing the median number of
// sellers matched per multi-card search.
func MatchedSellers() *timeseries.PanelBuilder {
	return lineSeries("Matched Sellers (p50)", "Median sellers able to fulfill a whole request", ThirdWidth).
		WithTarget(PromQuery(Quantile("0.50", "kpp_multi_search_matched_sellers"), "sellers", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// CardFailures returns a timeseries panel showing the rate of requested
// cards that could not be resolved.
func CardFailures() *timeseries.PanelBuilder {
	return lineSeries("Unresolved Cards", "Requested cards whose search or listing fetch failed", ThirdWidth).
		WithTarget(PromQuery(
			`sum(rate(kpp_multi_search_card_failures_total{job="`+Job+`"}[5m]))`,
			"cards/s", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds())
}
