package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NotificationsRate returns a timeseries panel showing price alerts sent and
// suppressed as duplicates.
func NotificationsRate() *timeseries.PanelBuilder {
	return lineSeries("Price Alerts", "Alerts delivered and suppressed as duplicates", ThirdWidth).
		WithTarget(PromQuery(`sum(rate(kpp_notifications_sent_total{job="`+Job+`"}[5m]))`, "sent", "A")).
		WithTarget(PromQuery(`sum(rate(kpp_notifications_suppressed_total{job="`+Job+`"}[5m]))`, "suppressed", "B")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic())
}

// NotificationLatency returns a timeseries panel showing the p95 delivery
// latency of LINE and Discord calls.
func NotificationLatency() *timeseries.PanelBuilder {
	return lineSeries("Notification Latency (p95)", "95th percentile notification delivery latency", ThirdWidth).
		WithTarget(PromQuery(`kpp:notification_duration:p95_5m`, "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemePaletteClassic())
}

// NotificationFailures returns a stat panel showing notification failures
// in the past 24 hours.
func NotificationFailures() *stat.PanelBuilder {
	return valueStat("Notification Failures (24h)", "Failed alert deliveries in the last 24 hours").
		Span(ThirdWidth).
		WithTarget(PromQuery(`increase(kpp_notification_failures_total{job="`+Job+`"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
