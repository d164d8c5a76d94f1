package config

import (
	"errors"
	"fmt"
	"slices"
)

// problems collects every violation so one failed start reports them all.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p problems) err() error { return errors.Join(p...) }

// Validate reports every invalid setting in c, joined into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Store.validate(&p)
	c.Auth.validate(&p)
	c.Client.validate(&p)
	c.Pagination.validate(&p)
	c.Reconcile.validate(&p)
	c.Telemetry.validate(&p)
	return p.err()
}

func oneOf(v string, allowed ...string) bool { return slices.Contains(allowed, v) }

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.check(s.DrainTimeout >= 0, "server.drain_timeout must not be negative")
}

func (l *LogConfig) validate(p *problems) {
	p.check(oneOf(l.Level, "debug", "info", "warn", "error"),
		"log.level must be one of: debug, info, warn, error; got %q", l.Level)
	p.check(oneOf(l.Format, "json", "text"), "log.format must be one of: json, text; got %q", l.Format)
}

func (s *StoreConfig) validate(p *problems) {
	p.check(oneOf(s.Driver, "memory", "sqlite", "postgres"),
		"store.driver must be one of: memory, sqlite, postgres; got %q", s.Driver)
	p.check(!oneOf(s.Driver, "sqlite", "postgres") || s.DSN != "",
		"store.dsn must not be empty for driver %q", s.Driver)
	p.check(s.MaxOpenConns >= 1, "store.max_open_conns must be >= 1, got %d", s.MaxOpenConns)
	p.check(s.CircuitBreaker.MaxFailures >= 1,
		"store.circuit_breaker.max_failures must be >= 1, got %d", s.CircuitBreaker.MaxFailures)
}

func (a *AuthConfig) validate(p *problems) {
	switch a.Mode {
	case "hmac":
		p.check(a.HMACSecret != "", "auth.hmac_secret must not be empty when mode is hmac")
	case "jwks":
		p.check(a.JWKSURL != "", "auth.jwks_url must not be empty when mode is jwks")
		p.check(a.JWKSCacheTTL > 0, "auth.jwks_cache_ttl must be positive")
	default:
		p.check(false, "auth.mode must be one of: hmac, jwks; got %q", a.Mode)
	}
}

func (cl *ClientConfig) validate(p *problems) {
	rl := cl.RateLimit
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond <= 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1, got %d", rl.BurstSize)
}

func (pg *PaginationConfig) validate(p *problems) {
	p.check(pg.DefaultLimit >= 1, "pagination.default_limit must be >= 1, got %d", pg.DefaultLimit)
	p.check(pg.MaxLimit >= pg.DefaultLimit, "pagination.max_limit must be >= default_limit, got %d", pg.MaxLimit)
}

func (r *ReconcileConfig) validate(p *problems) {
	p.check(r.Workers >= 1, "reconcile.workers must be >= 1, got %d", r.Workers)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.check(oneOf(t.Exporter, "stdout", "otlp"), "telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
	p.check(t.ServiceName != "", "telemetry.service_name must not be empty")
}
