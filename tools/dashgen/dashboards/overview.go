// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/droplist/tools/dashgen/panels"
)

// UID is the stable Grafana identifier of the overview dashboard.
const UID = "droplist-overview"

// BuildOverview constructs the droplist overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("droplist Overview").
		Uid(UID).
		Tags([]string{"droplist", "ebay"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: eBay API.
	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()).
		WithPanel(panels.TokenRefreshes()))

	// Row 4: Publishing.
	b.WithRow(dashboard.NewRowBuilder("Publishing").
		WithPanel(panels.PublishOutcomes()).
		WithPanel(panels.PublishDuration()).
		WithPanel(panels.CategoryRetries()))

	// Row 5: Sync.
	b.WithRow(dashboard.NewRowBuilder("Sync").
		WithPanel(panels.SyncOffers()).
		WithPanel(panels.SyncFailures()))

	// Row 6: Drafts and notifications.
	b.WithRow(dashboard.NewRowBuilder("Drafts").
		WithPanel(panels.DraftsRate()).
		WithPanel(panels.AnalyzerDuration()).
		WithPanel(panels.WebhookEvents()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
