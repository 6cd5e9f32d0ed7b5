package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// DraftsRate plots drafts created and drafts whose analysis failed, per
// hour.
func DraftsRate() *timeseries.PanelBuilder {
	return lineChart("Drafts / hour", "Drafts created from photos and drafts whose analysis failed", ThirdWidth).
		WithTarget(PromQuery(`rate(droplist_drafts_created_total{`+Job+`}[1h]) * 3600`, "created", "A")).
		WithTarget(PromQuery(`droplist:drafts_failed:rate5m * 3600`, "failed", "B")).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip())
}

// AnalyzerDuration plots p50 and p95 image analysis latency.
func AnalyzerDuration() *timeseries.PanelBuilder {
	const histogram = "droplist_analyzer_duration_seconds"
	return lineChart("Analyzer Duration", "Image analysis latency percentiles", ThirdWidth).
		WithTarget(PromQuery(Quantile(0.50, histogram), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, histogram), "p95", "B")).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(20, 40))
}

// WebhookEvents plots eBay notifications received per hour by topic.
func WebhookEvents() *timeseries.PanelBuilder {
	return lineChart("Webhook Events / hour", "eBay platform notifications received by topic", ThirdWidth).
		WithTarget(PromQuery(
			`sum(rate(droplist_webhook_events_total{`+Job+`}[1h])) by (topic) * 3600`,
			"{{topic}}", "A",
		))
}
