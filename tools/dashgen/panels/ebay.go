package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate plots the recorded Sell API call rate.
func APICallsRate() *timeseries.PanelBuilder {
	return lineChart("API Calls Rate", "eBay Sell API calls per second", StatWidth).
		WithTarget(PromQuery(`droplist:ebay_api_calls:rate5m`, "calls/s", "A")).
		Unit("reqps")
}

// DailyUsage plots today's Sell API call count, coloured against the
// daily limit.
func DailyUsage() *timeseries.PanelBuilder {
	return lineChart(
		"Daily Usage vs Limit",
		fmt.Sprintf("Rolling 24h eBay API call count (limit: %d)", EbayDailyLimit),
		StatWidth,
	).
		WithTarget(PromQuery(`droplist_ebay_daily_usage{`+Job+`}`, "usage", "A")).
		Thresholds(ThresholdsGreenYellowRed(0.8*EbayDailyLimit, EbayDailyLimit)).
		ColorScheme(ColorSchemeThresholds())
}

// LimitHits counts how often the daily limit was reached in the last day.
func LimitHits() *stat.PanelBuilder {
	return countStat(
		"Limit Hits (24h)",
		"Times the eBay daily limit was reached in the last 24 hours",
		`increase(droplist_ebay_daily_limit_hits_total{`+Job+`}[24h])`,
		StatWidth,
	).Thresholds(ThresholdsGreenYellowRed(1, 3))
}

// TokenRefreshes plots seller token refreshes per minute by outcome.
func TokenRefreshes() *timeseries.PanelBuilder {
	return lineChart("Token Refreshes", "Seller OAuth token refresh attempts per minute by outcome", StatWidth).
		WithTarget(PromQuery(
			`sum(rate(droplist_token_refreshes_total{`+Job+`}[5m])) by (outcome) * 60`,
			"{{outcome}}", "A",
		)).
		Legend(TableLegend("sum"))
}
