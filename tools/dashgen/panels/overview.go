package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat shows the liveness probe gauge.
func HealthzStat() *stat.PanelBuilder {
	return probeStat("Healthz", "Liveness probe (1 = ok)", `droplist_healthz_up`)
}

// ReadyzStat shows the readiness probe gauge, which drops to 0 when the
// database is unreachable.
func ReadyzStat() *stat.PanelBuilder {
	return probeStat("Readyz", "Readiness probe (1 = database reachable)", `droplist_readyz_up`)
}

// QuotaGauge shows Sell API calls made today against EbayDailyLimit.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("eBay Quota %").
		Description(fmt.Sprintf("Sell API calls today as a share of the %d call budget", EbayDailyLimit)).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			fmt.Sprintf("100 * droplist_ebay_daily_usage / %d", EbayDailyLimit), "", "A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(ThresholdsGreenYellowRed(80, 95)).
		ColorScheme(ColorSchemeThresholds())
}

// UptimeStat shows seconds since the server process started.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Seconds since the droplist process started").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - process_start_time_seconds{`+Job+`}`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
