// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
//
// The loaded *Config is the one process-wide configuration object. It is
// passed explicitly to every constructor; nothing reads it from a global.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Store      StoreConfig      `koanf:"store"`
	Auth       AuthConfig       `koanf:"auth"`
	Client     ClientConfig     `koanf:"client"`
	Pagination PaginationConfig `koanf:"pagination"`
	Reconcile  ReconcileConfig  `koanf:"reconcile"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// DrainTimeout bounds how long in-flight requests may run after a
	// shutdown signal.
	DrainTimeout time.Duration `koanf:"drain_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects and tunes the document store.
type StoreConfig struct {
	// Driver is one of memory, sqlite, postgres.
	Driver       string `koanf:"driver"`
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	// Transactional runs each relationship write sequence in one store
	// transaction when the driver supports it.
	Transactional  bool                 `koanf:"transactional"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	// Mode is hmac (shared secret, HS256) or jwks (RS256 keys fetched from JWKSURL).
	Mode         string        `koanf:"mode"`
	HMACSecret   string        `koanf:"hmac_secret"`
	JWKSURL      string        `koanf:"jwks_url"`
	Issuer       string        `koanf:"issuer"`
	Audience     string        `koanf:"audience"`
	JWKSCacheTTL time.Duration `koanf:"jwks_cache_ttl"`
}

// ClientConfig holds outbound HTTP client settings.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. Zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// PaginationConfig bounds list endpoints.
type PaginationConfig struct {
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

// ReconcileConfig tunes the edge reconciliation pass.
type ReconcileConfig struct {
	Workers int `koanf:"workers"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
