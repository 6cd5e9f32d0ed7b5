package main

import "errors"

// KnownMetrics is the set of metric names exported by droplist plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"droplist_http_request_duration_seconds": true,
	"droplist_http_requests_total":           true,

	// Health metrics.
	"droplist_healthz_up": true,
	"droplist_readyz_up":  true,

	// eBay API metrics.
	"droplist_ebay_api_calls_total":        true,
	"droplist_ebay_daily_usage":            true,
	"droplist_ebay_daily_limit_hits_total": true,
	"droplist_token_refreshes_total":       true,

	// Publication metrics.
	"droplist_publish_outcomes_total":   true,
	"droplist_category_retries_total":   true,
	"droplist_publish_duration_seconds": true,

	// Sync metrics.
	"droplist_sync_offers_upserted_total": true,
	"droplist_sync_offers_skipped_total":  true,
	"droplist_sync_runs_total":            true,

	// Draft metrics.
	"droplist_drafts_created_total":      true,
	"droplist_drafts_failed_total":       true,
	"droplist_analyzer_duration_seconds": true,

	// Webhook metrics.
	"droplist_webhook_events_total": true,

	// Recording rules.
	"droplist:http_requests:rate5m":    true,
	"droplist:http_errors:rate5m":      true,
	"droplist:ebay_api_calls:rate5m":   true,
	"droplist:publish_failures:rate5m": true,
	"droplist:sync_failures:rate5m":    true,
	"droplist:drafts_failed:rate5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
