package config_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankimjw/portfolio-api/internal/platform/config"
)

// layered is a config tree small enough to read at a glance.
func layered() fstest.MapFS {
	return fstest.MapFS{
		"configs/base.yaml": {Data: []byte(`
server:
  port: 8080
  read_timeout: 5s
pagination:
  default_limit: 5
`)},
		"configs/test.yaml": {Data: []byte(`
log:
  level: debug
  format: text
auth:
  mode: hmac
  hmac_secret: test-secret
`)},
		"alt/base.yaml": {Data: []byte(`
server:
  port: 7070
`)},
		"alt/test.yaml": {Data: []byte(`
auth:
  hmac_secret: alt-secret
`)},
		"configs/broken.yaml": {Data: []byte("log: [unterminated")},
	}
}

func TestLoad_RepoProfiles(t *testing.T) {
	t.Chdir("../../..")

	local, err := config.Load("local")
	require.NoError(t, err)
	assert.Equal(t, "memory", local.Store.Driver)
	assert.Equal(t, "text", local.Log.Format)
	assert.Equal(t, "hmac", local.Auth.Mode)
	assert.NotEmpty(t, local.Auth.HMACSecret)
	assert.False(t, local.Telemetry.Enabled)
	assert.Equal(t, 15*time.Second, local.Server.DrainTimeout)

	sqlite, err := config.Load("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", sqlite.Store.Driver)
	assert.Equal(t, 1, sqlite.Store.MaxOpenConns)

	prod, err := config.Load("prod")
	require.NoError(t, err)
	assert.Equal(t, "postgres", prod.Store.Driver)
	assert.Equal(t, "jwks", prod.Auth.Mode)
	assert.NotEmpty(t, prod.Auth.JWKSURL)
	assert.Equal(t, "otlp", prod.Telemetry.Exporter)
	assert.True(t, prod.Telemetry.Enabled)
}

func TestLoad_Layers(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("test", config.WithConfigFS(layered()))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port, "base")
	assert.Equal(t, "debug", cfg.Log.Level, "profile")
	assert.Equal(t, "test-secret", cfg.Auth.HMACSecret, "profile")
	assert.Equal(t, 100, cfg.Pagination.MaxLimit, "default")
	assert.Equal(t, 10*time.Minute, cfg.Auth.JWKSCacheTTL, "default")
	assert.Equal(t, 3, cfg.Client.Retry.MaxAttempts, "default")
	assert.Empty(t, cfg.Store.DSN)
}

func TestLoad_ConfigDirInsideFS(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("test", config.WithConfigFS(layered()), config.WithConfigDir("alt"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "alt-secret", cfg.Auth.HMACSecret)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		env, value string
		check      func(t *testing.T, cfg *config.Config)
	}{
		{env: "APP_SERVER_PORT", value: "9090", check: func(t *testing.T, c *config.Config) {
			assert.Equal(t, 9090, c.Server.Port)
		}},
		{env: "APP_SERVER_READ_TIMEOUT", value: "15s", check: func(t *testing.T, c *config.Config) {
			assert.Equal(t, 15*time.Second, c.Server.ReadTimeout)
		}},
		{env: "APP_STORE_MAX_OPEN_CONNS", value: "3", check: func(t *testing.T, c *config.Config) {
			assert.Equal(t, 3, c.Store.MaxOpenConns)
		}},
		{env: "APP_CLIENT_RETRY_MAX_ATTEMPTS", value: "7", check: func(t *testing.T, c *config.Config) {
			assert.Equal(t, 7, c.Client.Retry.MaxAttempts)
		}},
		{env: "APP_AUTH_JWKS_URL", value: "https://issuer.example.com/.well-known/jwks.json", check: func(t *testing.T, c *config.Config) {
			assert.Equal(t, "https://issuer.example.com/.well-known/jwks.json", c.Auth.JWKSURL)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			cfg, err := config.Load("test", config.WithConfigFS(layered()))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile string
		wantMsg string
	}{
		{name: "empty profile", profile: " ", wantMsg: "must not be empty"},
		{name: "path separator", profile: "../prod", wantMsg: "plain name"},
		{name: "dot dot", profile: "..", wantMsg: "plain name"},
		{name: "missing profile", profile: "staging", wantMsg: "staging.yaml"},
		{name: "malformed yaml", profile: "broken", wantMsg: "broken.yaml"},
		{name: "fails validation", profile: "base", wantMsg: "invalid base config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load(tt.profile, config.WithConfigFS(layered()))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{name: "port zero", modify: func(c *config.Config) { c.Server.Port = 0 }},
		{name: "unknown log level", modify: func(c *config.Config) { c.Log.Level = "verbose" }},
		{name: "unknown store driver", modify: func(c *config.Config) { c.Store.Driver = "mongo" }},
		{name: "sqlite without dsn", modify: func(c *config.Config) {
			c.Store.Driver = "sqlite"
			c.Store.DSN = ""
		}},
		{name: "hmac without secret", modify: func(c *config.Config) { c.Auth.HMACSecret = "" }},
		{name: "jwks without url", modify: func(c *config.Config) {
			c.Auth.Mode = "jwks"
			c.Auth.JWKSURL = ""
		}},
		{name: "unknown auth mode", modify: func(c *config.Config) { c.Auth.Mode = "basic" }},
		{name: "zero page limit", modify: func(c *config.Config) { c.Pagination.DefaultLimit = 0 }},
		{name: "max below default", modify: func(c *config.Config) { c.Pagination.MaxLimit = 2 }},
		{name: "no reconcile workers", modify: func(c *config.Config) { c.Reconcile.Workers = 0 }},
		{name: "rate limit without burst", modify: func(c *config.Config) {
			c.Client.RateLimit.RequestsPerSecond = 10
			c.Client.RateLimit.BurstSize = 0
		}},
		{name: "negative drain", modify: func(c *config.Config) { c.Server.DrainTimeout = -time.Second }},
		{name: "otlp without endpoint", modify: func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
			c.Telemetry.Endpoint = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.modify(cfg)

			require.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, validBaseConfig().Validate())
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	breaker := config.CircuitBreakerConfig{
		MaxFailures:   5,
		Timeout:       30 * time.Second,
		HalfOpenLimit: 1,
	}
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Store: config.StoreConfig{
			Driver:         "memory",
			MaxOpenConns:   10,
			Transactional:  true,
			CircuitBreaker: breaker,
		},
		Auth: config.AuthConfig{
			Mode:         "hmac",
			HMACSecret:   "secret",
			JWKSCacheTTL: 10 * time.Minute,
		},
		Client: config.ClientConfig{
			Timeout: 10 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: breaker,
		},
		Pagination: config.PaginationConfig{DefaultLimit: 5, MaxLimit: 100},
		Reconcile:  config.ReconcileConfig{Workers: 4},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
