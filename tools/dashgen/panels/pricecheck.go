package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// WatchesChecked returns a timeseries panel showing watch checks completed
// and failed per second.
func WatchesChecked() *timeseries.PanelBuilder {
	return lineSeries("Watch Checks", "Watch checks completed and failed per second", ThirdWidth).
		WithTarget(PromQuery(`sum(rate(kpp_watches_checked_total{job="`+Job+`"}[5m]))`, "checked", "A")).
		WithTarget(PromQuery(`kpp:watch_check_failures:rate5m`, "failed", "B")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// PriceCheckDuration returns a timeseries panel showing the p95 duration of
// a full price check pass.
func PriceCheckDuration() *timeseries.PanelBuilder {
	return lineSeries("Price Check Duration (p95)", "95th percentile full price check pass duration", ThirdWidth).
		WithTarget(PromQuery(Quantile("0.95", "kpp_price_check_duration_seconds"), "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(60, 300)).
		ColorScheme(ColorSchemePaletteClassic())
}

// NextRunCountdown returns a stat panel showing time until the next
// scheduled price check.
func NextRunCountdown() *stat.PanelBuilder {
	return valueStat("Next Price Check", "Time until the next scheduled price check").
		Span(ThirdWidth).
		WithTarget(PromQuery(`kpp_scheduler_next_run_timestamp{job="`+Job+`"} - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeValue)
}
