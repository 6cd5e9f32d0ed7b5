package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PublishOutcomes plots publish attempts per minute split by result.
func PublishOutcomes() *timeseries.PanelBuilder {
	return lineChart("Publish Outcomes", "Draft publication attempts per minute by result", ThirdWidth).
		WithTarget(PromQuery(
			`sum(rate(droplist_publish_outcomes_total{`+Job+`}[5m])) by (result) * 60`,
			"{{result}}", "A",
		)).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip())
}

// PublishDuration plots the p95 duration of the whole publish workflow.
func PublishDuration() *timeseries.PanelBuilder {
	return lineChart("Publish Duration (p95)", "95th percentile draft publication duration", ThirdWidth).
		WithTarget(PromQuery(Quantile(0.95, "droplist_publish_duration_seconds"), "p95", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(10, 30))
}

// CategoryRetries counts publishes that were retried under an eBay
// suggested category in the last day.
func CategoryRetries() *stat.PanelBuilder {
	return countStat(
		"Category Retries (24h)",
		"Publishes retried with a suggested category after eBay rejected the original",
		`increase(droplist_category_retries_total{`+Job+`}[24h])`,
		ThirdWidth,
	).Thresholds(ThresholdsGreenYellowRed(5, 20))
}
