package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SyncOffers plots offers upserted and skipped by sync per minute.
func SyncOffers() *timeseries.PanelBuilder {
	return lineChart("Synced Offers / min", "Remote offers written to or skipped by the listing store", TSWidth).
		WithTarget(PromQuery(`rate(droplist_sync_offers_upserted_total{`+Job+`}[5m]) * 60`, "upserted", "A")).
		WithTarget(PromQuery(`rate(droplist_sync_offers_skipped_total{`+Job+`}[5m]) * 60`, "skipped", "B")).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip())
}

// SyncFailures counts sync runs that ended in error in the last day.
func SyncFailures() *stat.PanelBuilder {
	return countStat(
		"Sync Failures (24h)",
		"Offer sync runs that ended in error in the last 24 hours",
		`increase(droplist_sync_runs_total{`+Job+`,result="error"}[24h])`,
		TSWidth,
	).Thresholds(ThresholdsGreenYellowRed(1, 5))
}
