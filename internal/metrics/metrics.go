// Package metrics defines Prometheus metrics for droplist.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "droplist"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// eBay API metrics.
var (
	EbayAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_api_calls_total",
		Help:      "Total eBay Sell API calls by operation and status class.",
	}, []string{"operation", "status"})

	EbayDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ebay_daily_usage",
		Help:      "Current daily eBay API call count within the rolling 24-hour window.",
	})

	EbayDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ebay_daily_limit_hits_total",
		Help:      "Total number of times the daily eBay API limit was reached.",
	})

	TokenRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Seller token refresh attempts by outcome.",
	}, []string{"outcome"})
)

// Publication metrics.
var (
	PublishOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "publish_outcomes_total",
		Help:      "Publication attempts by result.",
	}, []string{"result"})

	CategoryRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "category_retries_total",
		Help:      "Publishes retried with a suggested category after an invalid-category rejection.",
	})

	PublishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "publish_duration_seconds",
		Help:      "Duration of draft publication workflows in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Sync metrics.
var (
	SyncOffersUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_offers_upserted_total",
		Help:      "Total offers written to the listing store by sync.",
	})

	SyncOffersSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_offers_skipped_total",
		Help:      "Total remote offers skipped by sync for missing identifiers.",
	})

	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_runs_total",
		Help:      "Sync runs by result.",
	}, []string{"result"})
)

// Draft metrics.
var (
	DraftsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drafts_created_total",
		Help:      "Total drafts created from photos.",
	})

	DraftsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "drafts_failed_total",
		Help:      "Total drafts whose image analysis failed.",
	})

	AnalyzerDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analyzer_duration_seconds",
		Help:      "Duration of image analysis calls in seconds.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
	})
)

// Webhook metrics.
var (
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_events_total",
		Help:      "Webhook notifications received by topic.",
	}, []string{"topic"})
)
