// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Ebay      EbayConfig      `yaml:"ebay"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Auth      AuthConfig      `yaml:"auth"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Secrets   SecretsConfig   `yaml:"secrets"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// PublicBaseURL is the externally reachable origin. eBay fetches draft
	// photos from it.
	PublicBaseURL string `yaml:"public_base_url"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// RedisConfig defines the Redis connection used for OAuth state. An empty
// address selects the in-process state store.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	StateTTL time.Duration `yaml:"state_ttl"`
}

// EbayConfig defines eBay API settings.
type EbayConfig struct {
	Environment  string          `yaml:"environment"` // sandbox, production
	ClientID     string          `yaml:"client_id"`
	ClientSecret string          `yaml:"client_secret"`
	RedirectURI  string          `yaml:"redirect_uri"` // RuName
	TokenURL     string          `yaml:"token_url"`
	AuthURL      string          `yaml:"auth_url"`
	APIURL       string          `yaml:"api_url"`
	Timeout      time.Duration   `yaml:"timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
	Sync         SyncConfig      `yaml:"sync"`
}

// RateLimitConfig defines eBay API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// SyncConfig bounds offer pagination.
type SyncConfig struct {
	PageSize int `yaml:"page_size"`
	MaxPages int `yaml:"max_pages"`
}

// AnalyzerConfig defines the image analyzer backend.
type AnalyzerConfig struct {
	Provider string        `yaml:"provider"` // openai or anthropic
	Endpoint string        `yaml:"endpoint"`
	Model    string        `yaml:"model"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// AuthConfig defines bearer token verification.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
	// Disabled trusts the X-User-ID header. Development only.
	Disabled bool `yaml:"disabled"`
}

// WebhookConfig defines eBay notification settings.
type WebhookConfig struct {
	VerificationToken string `yaml:"verification_token"`
	EndpointURL       string `yaml:"endpoint_url"`
}

// SecretsConfig defines encryption of stored eBay tokens.
type SecretsConfig struct {
	TokenKey string `yaml:"token_key"` // base64, 32 bytes
}

// ScheduleConfig defines background intervals. A zero sync interval
// disables periodic sync.
type ScheduleConfig struct {
	SyncInterval time.Duration `yaml:"sync_interval"`
}

// TelemetryConfig defines OpenTelemetry tracing export.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyRedisDefaults(&cfg.Redis)
	applyEbayDefaults(&cfg.Ebay)
	applyAnalyzerDefaults(&cfg.Analyzer)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		// Draft creation waits on the analyzer.
		s.WriteTimeout = 90 * time.Second
	}
	s.PublicBaseURL = strings.TrimSuffix(s.PublicBaseURL, "/")
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyRedisDefaults(r *RedisConfig) {
	if r.StateTTL == 0 {
		r.StateTTL = 10 * time.Minute
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.Environment == "" {
		e.Environment = "sandbox"
	}
	if e.Timeout == 0 {
		e.Timeout = 30 * time.Second
	}
	applyRateLimitDefaults(&e.RateLimit)
	if e.Sync.PageSize == 0 {
		e.Sync.PageSize = 200
	}
	if e.Sync.MaxPages == 0 {
		e.Sync.MaxPages = 25
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 5000
	}
}

func applyAnalyzerDefaults(a *AnalyzerConfig) {
	if a.Provider == "" {
		a.Provider = "openai"
	}
	switch a.Provider {
	case "anthropic":
		if a.Endpoint == "" {
			a.Endpoint = "https://api.anthropic.com"
		}
		if a.Model == "" {
			a.Model = "claude-haiku-4-20250514"
		}
	default:
		if a.Endpoint == "" {
			a.Endpoint = "https://api.openai.com"
		}
		if a.Model == "" {
			a.Model = "gpt-4o-mini"
		}
	}
	if a.Timeout == 0 {
		a.Timeout = 60 * time.Second
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.ServiceName == "" {
		t.ServiceName = "droplist"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	switch cfg.Ebay.Environment {
	case "sandbox", "production":
	default:
		errs = append(errs, fmt.Errorf(
			"ebay.environment must be one of: sandbox, production (got %q)",
			cfg.Ebay.Environment,
		))
	}
	if cfg.Ebay.ClientID == "" {
		errs = append(errs, fmt.Errorf("ebay.client_id is required"))
	}
	if cfg.Ebay.ClientSecret == "" {
		errs = append(errs, fmt.Errorf("ebay.client_secret is required"))
	}

	if !cfg.Auth.Disabled && cfg.Auth.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("auth.jwt_secret is required unless auth.disabled is set"))
	}

	if cfg.Secrets.TokenKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.Secrets.TokenKey)
		if err != nil || len(key) != 32 {
			errs = append(errs, fmt.Errorf("secrets.token_key must be 32 bytes of base64"))
		}
	}

	switch cfg.Analyzer.Provider {
	case "openai", "anthropic":
	default:
		errs = append(errs, fmt.Errorf(
			"analyzer.provider must be one of: openai, anthropic (got %q)",
			cfg.Analyzer.Provider,
		))
	}

	if cfg.Schedule.SyncInterval < 0 {
		errs = append(errs, fmt.Errorf("schedule.sync_interval must not be negative"))
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json (got %q)",
			cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}
