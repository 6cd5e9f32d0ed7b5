package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/droplist/tools/dashgen/dashboards"
	"github.com/donaldgifford/droplist/tools/dashgen/rules"
	"github.com/donaldgifford/droplist/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "droplist-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "droplist Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 6)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 19, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "droplist-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "droplist-recording", group.Name)

	expectedRecords := []string{
		"droplist:http_requests:rate5m",
		"droplist:http_errors:rate5m",
		"droplist:ebay_api_calls:rate5m",
		"droplist:publish_failures:rate5m",
		"droplist:sync_failures:rate5m",
		"droplist:drafts_failed:rate5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "record %s missing from KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "droplist-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "droplist-alerts", group.Name)

	expectedAlerts := []string{
		"DroplistDown",
		"DroplistReadinessDown",
		"DroplistHighErrorRate",
		"DroplistPublishFailures",
		"DroplistSyncFailures",
		"DroplistTokenRefreshRejected",
		"DroplistEbayQuotaHigh",
		"DroplistEbayLimitReached",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestValidate_RejectsUnknownMetric(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name: "bad",
		Rules: []rules.Rule{
			{Alert: "Unknown", Expr: `rate(droplist_nonexistent_total[5m]) > 0`},
			{Alert: "Broken", Expr: `rate(droplist_http_requests_total[5m]`},
			{Alert: "Histogram", Expr: `droplist_publish_duration_seconds_count > 0`},
		},
	}}}}

	result := validate.Rules(cr, KnownMetrics)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "droplist_nonexistent_total")
	assert.Contains(t, result.Errors[1], "Broken")
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OutputDir = t.TempDir()
	require.NoError(t, run(cfg, false))

	for _, p := range []string{
		filepath.Join("grafana", "data", "droplist-overview.json"),
		filepath.Join("prometheus", "droplist-recording-rules.yaml"),
		filepath.Join("prometheus", "droplist-alerts.yaml"),
	} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, p))
		require.NoError(t, err, p)
		assert.NotEmpty(t, data, p)
	}
}
