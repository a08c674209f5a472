package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat returns a stat panel showing the health check status.
func HealthzStat() *stat.PanelBuilder {
	return valueStat("Healthz", "Health check status (1 = ok, 0 = failing)").
		WithTarget(PromQuery(`kpp_healthz_up`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// ReadyzStat returns a stat panel showing the readiness check status.
func ReadyzStat() *stat.PanelBuilder {
	return valueStat("Readyz", "Readiness check status (1 = ready, 0 = database unreachable)").
		WithTarget(PromQuery(`kpp_readyz_up`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// LastPriceCheckStat returns a stat panel showing the age of the last
// completed price check pass.
func LastPriceCheckStat() *stat.PanelBuilder {
	return valueStat("Last Price Check", "Time since the last completed price check pass").
		WithTarget(PromQuery(`time() - kpp_last_price_check_timestamp{job="`+Job+`"}`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(1800, 3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground)
}

// UptimeStat returns a stat panel showing process uptime.
func UptimeStat() *stat.PanelBuilder {
	return valueStat("Uptime", "Time since process start").
		WithTarget(PromQuery(`time() - process_start_time_seconds{job="`+Job+`"}`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds())
}
