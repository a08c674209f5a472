// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/mong0520/kapaipai-api/tools/dashgen/panels"
)

// UID is the stable identifier of the overview dashboard.
const UID = "kpp-overview"

// BuildOverview constructs the kapaipai tracker overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Kapaipai Tracker Overview").
		Uid(UID).
		Tags([]string{"kpp", "kapaipai-tracker"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.LastPriceCheckStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Marketplace").
		WithPanel(panels.MarketplaceCallsRate()).
		WithPanel(panels.MarketplaceLatency()).
		WithPanel(panels.MarketplaceErrorRatio()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.BudgetHits()))

	b.WithRow(dashboard.NewRowBuilder("Multi-card Search").
		WithPanel(panels.MultiSearchDuration()).
		WithPanel(panels.MatchedSellers()).
		WithPanel(panels.CardFailures()))

	b.WithRow(dashboard.NewRowBuilder("Price Checks").
		WithPanel(panels.WatchesChecked()).
		WithPanel(panels.PriceCheckDuration()).
		WithPanel(panels.NextRunCountdown()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
