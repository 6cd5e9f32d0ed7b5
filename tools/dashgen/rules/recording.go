package rules

// RecordingRules precomputes the rates the dashboard and alerts share.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("droplist-recording-rules",
		record("droplist:http_requests:rate5m",
			`sum(rate(droplist_http_requests_total[5m]))`),
		record("droplist:http_errors:rate5m",
			`sum(rate(droplist_http_requests_total{status=~"5.."}[5m]))`),
		record("droplist:ebay_api_calls:rate5m",
			`sum(rate(droplist_ebay_api_calls_total[5m]))`),
		record("droplist:publish_failures:rate5m",
			`sum(rate(droplist_publish_outcomes_total{result="failed"}[5m]))`),
		record("droplist:sync_failures:rate5m",
			`sum(rate(droplist_sync_runs_total{result="error"}[5m]))`),
		record("droplist:drafts_failed:rate5m",
			`rate(droplist_drafts_failed_total[5m])`),
	)
}
