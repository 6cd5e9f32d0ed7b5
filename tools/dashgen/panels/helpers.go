// Package panels builds the Grafana panels for the droplist overview
// dashboard. Every panel queries the ${datasource} Prometheus variable and
// selects the droplist scrape job.
package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EbayDailyLimit is the default daily Sell API call budget.
const EbayDailyLimit = 5000

// Job is the Prometheus scrape job droplist runs under.
const Job = `job="droplist"`

// Grid sizes on Grafana's 24 column layout.
const (
	StatWidth  = 6
	StatHeight = 4

	TSWidth  = 12
	TSHeight = 8

	ThirdWidth = 8
	FullWidth  = 24
)

// DSRef points a panel at the ${datasource} template variable.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery is a single Prometheus target.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// Quantile builds a histogram_quantile expression over a droplist
// histogram, aggregated across instances.
func Quantile(q float64, histogram string) string {
	return fmt.Sprintf(
		`histogram_quantile(%.2f, sum(rate(%s_bucket{%s}[5m])) by (le))`,
		q, histogram, Job,
	)
}

// lineChart is the shared base for every timeseries panel: thin lines,
// light fill, classic palette.
func lineChart(title, description string, span uint32) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(span).
		FillOpacity(10).
		LineWidth(2).
		DrawStyle(common.GraphDrawStyleLine).
		ColorScheme(ColorSchemePaletteClassic()).
		Thresholds(ThresholdsGreenOnly())
}

// countStat is a background-coloured stat with a sparkline, used for
// "how many bad things happened recently" counters.
func countStat(title, description, expr string, span uint32) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(span).
		WithTarget(PromQuery(expr, "", "A")).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// probeStat renders a 0/1 gauge as a red or green tile.
func probeStat(title, description, metric string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(metric, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

func thresholds(steps ...dashboard.Threshold) cog.Builder[dashboard.ThresholdsConfig] {
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(steps)
}

// ThresholdsRedGreen is red below greenAbove.
func ThresholdsRedGreen(greenAbove float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(
		dashboard.Threshold{Color: "red"},
		dashboard.Threshold{Value: cog.ToPtr(greenAbove), Color: "green"},
	)
}

// ThresholdsGreenYellowRed turns yellow at yellow and red at red.
func ThresholdsGreenYellowRed(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(
		dashboard.Threshold{Color: "green"},
		dashboard.Threshold{Value: cog.ToPtr(yellow), Color: "yellow"},
		dashboard.Threshold{Value: cog.ToPtr(red), Color: "red"},
	)
}

// ThresholdsGreenOnly never changes colour.
func ThresholdsGreenOnly() cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds(dashboard.Threshold{Color: "green"})
}

// ColorSchemeThresholds colours values by their threshold step.
func ColorSchemeThresholds() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdThresholds)
}

// ColorSchemePaletteClassic gives each series its own palette colour.
func ColorSchemePaletteClassic() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdPaletteClassic)
}

// TableLegend renders the legend as a table under the graph with the given
// reducer columns.
func TableLegend(calcs ...string) *common.VizLegendOptionsBuilder {
	return common.NewVizLegendOptionsBuilder().
		DisplayMode(common.LegendDisplayModeTable).
		Placement(common.LegendPlacementBottom).
		Calcs(calcs)
}

// MultiTooltip shows every series, largest first.
func MultiTooltip() *common.VizTooltipOptionsBuilder {
	return common.NewVizTooltipOptionsBuilder().
		Mode(common.TooltipDisplayModeMulti).
		Sort(common.SortOrderDescending)
}
