package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
database:
  host: localhost
  name: droplist
  user: droplist
ebay:
  client_id: app-id
  client_secret: cert-id
auth:
  jwt_secret: shh
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "droplist", cfg.Database.Name)
				assert.Equal(t, "app-id", cfg.Ebay.ClientID)
				assert.Equal(t, "shh", cfg.Auth.JWTSecret)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: minimalYAML,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Empty(t, cfg.Redis.Addr)
				assert.Equal(t, 10*time.Minute, cfg.Redis.StateTTL)
				assert.Equal(t, "sandbox", cfg.Ebay.Environment)
				assert.Equal(t, 30*time.Second, cfg.Ebay.Timeout)
				assert.InDelta(t, 5.0, cfg.Ebay.RateLimit.PerSecond, 1e-9)
				assert.Equal(t, 10, cfg.Ebay.RateLimit.Burst)
				assert.Equal(t, int64(5000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, 200, cfg.Ebay.Sync.PageSize)
				assert.Equal(t, 25, cfg.Ebay.Sync.MaxPages)
				assert.Equal(t, "openai", cfg.Analyzer.Provider)
				assert.Equal(t, "https://api.openai.com", cfg.Analyzer.Endpoint)
				assert.Equal(t, "gpt-4o-mini", cfg.Analyzer.Model)
				assert.Equal(t, 60*time.Second, cfg.Analyzer.Timeout)
				assert.Zero(t, cfg.Schedule.SyncInterval)
				assert.False(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "droplist", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: minimalYAML + `
analyzer:
  api_key: "${TEST_OPENAI_KEY}"
webhook:
  verification_token: "${TEST_VERIFY_TOKEN}"
`,
			envVars: map[string]string{
				"TEST_OPENAI_KEY":   "sk-test",
				"TEST_VERIFY_TOKEN": "verify-me",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "sk-test", cfg.Analyzer.APIKey)
				assert.Equal(t, "verify-me", cfg.Webhook.VerificationToken)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: droplist
  user: droplist
ebay:
  client_id: a
  client_secret: b
auth:
  disabled: true
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing ebay credentials",
			yaml: `
database:
  host: localhost
  name: droplist
  user: droplist
auth:
  disabled: true
`,
			wantErr: "ebay.client_id is required",
		},
		{
			name: "invalid ebay environment",
			yaml: `
database:
  host: localhost
  name: droplist
  user: droplist
ebay:
  environment: staging
  client_id: a
  client_secret: b
auth:
  disabled: true
`,
			wantErr: `ebay.environment must be one of: sandbox, production (got "staging")`,
		},
		{
			name: "jwt secret required when auth enabled",
			yaml: `
database:
  host: localhost
  name: droplist
  user: droplist
ebay:
  client_id: a
  client_secret: b
`,
			wantErr: "auth.jwt_secret is required unless auth.disabled is set",
		},
		{
			name: "auth disabled needs no secret",
			yaml: `
database:
  host: localhost
  name: droplist
  user: droplist
ebay:
  client_id: a
  client_secret: b
auth:
  disabled: true
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.Auth.Disabled)
			},
		},
		{
			name: "token key must decode to 32 bytes",
			yaml: minimalYAML + `
secrets:
  token_key: c2hvcnQ=
`,
			wantErr: "secrets.token_key must be 32 bytes of base64",
		},
		{
			name: "invalid logging format",
			yaml: minimalYAML + `
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json (got "xml")`,
		},
		{
			name: "anthropic analyzer defaults",
			yaml: minimalYAML + `
analyzer:
  provider: anthropic
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://api.anthropic.com", cfg.Analyzer.Endpoint)
				assert.Equal(t, "claude-haiku-4-20250514", cfg.Analyzer.Model)
			},
		},
		{
			name: "invalid analyzer provider",
			yaml: minimalYAML + `
analyzer:
  provider: ollama
`,
			wantErr: `analyzer.provider must be one of: openai, anthropic (got "ollama")`,
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 120s
  public_base_url: https://drop.example.com/
database:
  host: db.example.com
  port: 5433
  name: droplist_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
redis:
  addr: redis:6379
  db: 2
  state_ttl: 5m
ebay:
  environment: production
  client_id: my-app-id
  client_secret: my-cert-id
  redirect_uri: My_RuName
  api_url: http://mock-ebay:8089
  rate_limit:
    per_second: 2
    burst: 4
    daily_limit: 1000
  sync:
    page_size: 50
    max_pages: 4
analyzer:
  endpoint: http://llm:8000
  model: gpt-4o
  timeout: 2m
auth:
  jwt_secret: topsecret
  issuer: https://id.example.com
webhook:
  verification_token: tok
  endpoint_url: https://drop.example.com/api/v1/ebay/webhook
secrets:
  token_key: AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8=
schedule:
  sync_interval: 30m
telemetry:
  enabled: true
  endpoint: otel:4317
  insecure: true
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "https://drop.example.com", cfg.Server.PublicBaseURL)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "redis:6379", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, 5*time.Minute, cfg.Redis.StateTTL)
				assert.Equal(t, "production", cfg.Ebay.Environment)
				assert.Equal(t, "My_RuName", cfg.Ebay.RedirectURI)
				assert.Equal(t, "http://mock-ebay:8089", cfg.Ebay.APIURL)
				assert.Equal(t, 4, cfg.Ebay.RateLimit.Burst)
				assert.Equal(t, int64(1000), cfg.Ebay.RateLimit.DailyLimit)
				assert.Equal(t, 50, cfg.Ebay.Sync.PageSize)
				assert.Equal(t, "gpt-4o", cfg.Analyzer.Model)
				assert.Equal(t, 2*time.Minute, cfg.Analyzer.Timeout)
				assert.Equal(t, "https://id.example.com", cfg.Auth.Issuer)
				assert.Equal(t, "https://drop.example.com/api/v1/ebay/webhook", cfg.Webhook.EndpointURL)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.SyncInterval)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.True(t, cfg.Telemetry.Insecure)
				assert.Equal(t, "otel:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		Name:     "droplist",
		User:     "admin",
		Password: "s3cret",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 dbname=droplist user=admin password=s3cret sslmode=require",
		cfg.DSN(),
	)
}
