package panels

import "github.com/grafana/grafana-foundation-sdk/go/timeseries"

// RequestRate plots the recorded API request rate.
func RequestRate() *timeseries.PanelBuilder {
	return lineChart("Request Rate", "API requests per second", TSWidth).
		WithTarget(PromQuery(`droplist:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// LatencyPercentiles plots p50/p95/p99 API latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const histogram = "droplist_http_request_duration_seconds"
	return lineChart("Latency Percentiles", "API request duration percentiles", TSWidth).
		WithTarget(PromQuery(Quantile(0.50, histogram), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, histogram), "p95", "B")).
		WithTarget(PromQuery(Quantile(0.99, histogram), "p99", "C")).
		Unit("s").
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// ErrorRate plots 5xx responses as a share of all API requests.
func ErrorRate() *timeseries.PanelBuilder {
	return lineChart("5xx Share %", "Share of API requests answered with a 5xx status", TSWidth).
		WithTarget(PromQuery(
			`100 * droplist:http_errors:rate5m / droplist:http_requests:rate5m`,
			"5xx %", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
