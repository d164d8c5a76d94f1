package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultStoreMaxOpenConns = 10

	defaultPageLimit    = 5
	defaultMaxPageLimit = 100

	defaultReconcileWorkers = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",
		"server.drain_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver":                          "memory",
		"store.dsn":                             "",
		"store.max_open_conns":                  defaultStoreMaxOpenConns,
		"store.transactional":                   true,
		"store.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"store.circuit_breaker.timeout":         "30s",
		"store.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"auth.mode":           "hmac",
		"auth.hmac_secret":    "",
		"auth.jwks_url":       "",
		"auth.issuer":         "",
		"auth.audience":       "",
		"auth.jwks_cache_ttl": "10m",

		"client.timeout":                         "10s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"pagination.default_limit": defaultPageLimit,
		"pagination.max_limit":     defaultMaxPageLimit,

		"reconcile.workers": defaultReconcileWorkers,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "portfolio-api",
	}
}
