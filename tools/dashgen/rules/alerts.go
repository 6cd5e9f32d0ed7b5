package rules

const (
	critical = "critical"
	warning  = "warning"
)

// AlertRules are the operational alerts for a droplist deployment.
func AlertRules() PrometheusRule {
	return newPrometheusRule("droplist-alerts",
		alert("DroplistDown",
			`absent(up{job="droplist"})`, "2m", critical,
			"droplist is down",
			"No droplist target has been scraped for 2 minutes."),
		alert("DroplistReadinessDown",
			`droplist_readyz_up == 0`, "2m", critical,
			"droplist cannot reach its database",
			"The readiness probe has reported not-ready for 2 minutes."),
		alert("DroplistHighErrorRate",
			`droplist:http_errors:rate5m / droplist:http_requests:rate5m > 0.05`, "5m", warning,
			"droplist API is answering with 5xx",
			"Over 5% of API requests returned a 5xx status in the last 5 minutes."),
		alert("DroplistPublishFailures",
			`droplist:publish_failures:rate5m > 0`, "10m", warning,
			"Draft publication is failing",
			"Publishing drafts to eBay has been failing for 10 minutes."),
		alert("DroplistSyncFailures",
			`droplist:sync_failures:rate5m > 0`, "15m", warning,
			"Offer sync is failing",
			"Scheduled offer sync runs have ended in error for 15 minutes."),
		alert("DroplistTokenRefreshRejected",
			`increase(droplist_token_refreshes_total{outcome="rejected"}[15m]) > 0`, "0m", warning,
			"eBay rejected a seller token refresh",
			"A seller refresh token was rejected; the seller has to reconnect their eBay account."),
		alert("DroplistEbayQuotaHigh",
			`droplist_ebay_daily_usage > 4000`, "5m", warning,
			"eBay Sell API usage is above 80% of the daily quota",
			"More than 4000 of the 5000 daily Sell API calls have been used."),
		alert("DroplistEbayLimitReached",
			`increase(droplist_ebay_daily_limit_hits_total[5m]) > 0`, "0m", critical,
			"eBay Sell API daily limit reached",
			"The daily Sell API quota is exhausted; publishing and sync fail until it resets."),
	)
}
