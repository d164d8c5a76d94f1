// Package httpclient fetches JSON documents from peer services, such as the
// signing keys published at a JWKS endpoint.
//
// A fetch passes through a circuit breaker, then up to Retry.MaxAttempts
// tries, each gated by the optional rate limiter and traced as one client
// span:
//
//	client := httpclient.New(&cfg.Client, "jwks", metrics, logger)
//	var set jwkSet
//	err := client.GetJSON(ctx, cfg.Auth.JWKSURL, &set)
//
// Request and correlation ids placed on the context with WithRequestID and
// WithCorrelationID travel with every try.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client is safe for concurrent use.
type Client struct {
	http    *http.Client
	peer    string
	breaker *gobreaker.CircuitBreaker[fetched]
	limiter *rate.Limiter // nil disables rate limiting
	backoff backoff
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New builds a client for the peer named peer, which labels traces,
// metrics and health results. metrics and logger may be nil.
func New(cfg *config.ClientConfig, peer string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		peer:    peer,
		backoff: newBackoff(cfg.Retry),
		metrics: metrics,
		logger:  logger,
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), max(cfg.RateLimit.BurstSize, 1))
	}
	c.breaker = gobreaker.NewCircuitBreaker[fetched](gobreaker.Settings{
		Name:        peer,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= max(cfg.CircuitBreaker.MaxFailures, 1)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// GetJSON fetches url and decodes its 2xx JSON body into dst. Every failure,
// from an open breaker to an undecodable body, wraps domain.ErrUnavailable.
func (c *Client) GetJSON(ctx context.Context, url string, dst any) error {
	start := time.Now()
	res, err := c.breaker.Execute(func() (fetched, error) {
		return c.fetch(ctx, url)
	})
	c.observe(ctx, start, res.status, err)

	if err != nil {
		return fmt.Errorf("%s: %w: %w", c.peer, domain.ErrUnavailable, err)
	}
	if err := json.Unmarshal(res.body, dst); err != nil {
		return fmt.Errorf("decoding %s response: %w: %w", c.peer, domain.ErrUnavailable, err)
	}
	return nil
}

// Name identifies the peer in health results.
func (c *Client) Name() string {
	return c.peer
}

// HealthCheck reads the breaker without touching the network: closed is
// healthy, anything else is reported.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.peer)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.peer)
	default:
		return fmt.Errorf("%s: circuit breaker in unknown state %v", c.peer, state)
	}
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
