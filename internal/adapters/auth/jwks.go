package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// minRefresh bounds how often an unknown kid can force a refetch.
const minRefresh = 30 * time.Second

// Fetcher retrieves and decodes a JSON document. httpclient.Client
// implements it.
type Fetcher interface {
	GetJSON(ctx context.Context, url string, dst any) error
}

// jwk is one RSA key of a JSON Web Key Set.
type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

// JWKS caches the RSA signing keys published at a JWKS URL. Keys are
// refetched once the cache is older than the TTL, or early when a token names
// a kid the cache does not hold. Concurrent refreshes collapse into one
// fetch.
type JWKS struct {
	fetcher Fetcher
	url     string
	ttl     time.Duration
	logger  *slog.Logger
	now     func() time.Time

	group   singleflight.Group
	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	fetched time.Time
}

// NewJWKS creates a key cache for url. Nothing is fetched until the first
// lookup.
func NewJWKS(fetcher Fetcher, url string, ttl time.Duration, logger *slog.Logger) *JWKS {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &JWKS{
		fetcher: fetcher,
		url:     url,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

// Key returns the public key for kid. An empty kid matches the set's only
// key when it holds exactly one.
func (j *JWKS) Key(ctx context.Context, kid string) (any, error) {
	key, fresh, age := j.lookup(kid)
	if key != nil && fresh {
		return key, nil
	}
	if key == nil && fresh && age < minRefresh {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}

	if err := j.refresh(ctx); err != nil {
		if key != nil {
			// Serve the stale key rather than fail every request while the
			// issuer is unreachable.
			j.logger.WarnContext(ctx, "serving stale signing key",
				slog.String("kid", kid),
				slog.Any("error", err),
			)
			return key, nil
		}
		return nil, err
	}

	if key, _, _ = j.lookup(kid); key == nil {
		return nil, fmt.Errorf("unknown signing key %q", kid)
	}
	return key, nil
}

// Name implements ports.HealthChecker.
func (j *JWKS) Name() string { return "jwks" }

// HealthCheck reports healthy while a fresh key set is cached, and otherwise
// tries to fetch one.
func (j *JWKS) HealthCheck(ctx context.Context) error {
	j.mu.RLock()
	fresh := len(j.keys) > 0 && j.now().Sub(j.fetched) < j.ttl
	j.mu.RUnlock()
	if fresh {
		return nil
	}
	return j.refresh(ctx)
}

func (j *JWKS) lookup(kid string) (key *rsa.PublicKey, fresh bool, age time.Duration) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	age = j.now().Sub(j.fetched)
	fresh = !j.fetched.IsZero() && age < j.ttl
	if kid == "" && len(j.keys) == 1 {
		for _, k := range j.keys {
			return k, fresh, age
		}
	}
	return j.keys[kid], fresh, age
}

func (j *JWKS) refresh(ctx context.Context) error {
	_, err, _ := j.group.Do("refresh", func() (any, error) {
		var set jwkSet
		if err := j.fetcher.GetJSON(ctx, j.url, &set); err != nil {
			return nil, fmt.Errorf("fetching jwks: %w", err)
		}

		keys := make(map[string]*rsa.PublicKey, len(set.Keys))
		for _, k := range set.Keys {
			if k.Kty != "RSA" || (k.Use != "" && k.Use != "sig") {
				continue
			}
			pub, err := k.rsaKey()
			if err != nil {
				j.logger.WarnContext(ctx, "skipping malformed jwk",
					slog.String("kid", k.Kid),
					slog.Any("error", err),
				)
				continue
			}
			keys[k.Kid] = pub
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("jwks at %s holds no usable RSA keys: %w", j.url, domain.ErrUnavailable)
		}

		j.mu.Lock()
		j.keys = keys
		j.fetched = j.now()
		j.mu.Unlock()

		j.logger.InfoContext(ctx, "signing keys refreshed", slog.Int("keys", len(keys)))
		return nil, nil
	})
	return err
}

func (k jwk) rsaKey() (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decoding modulus: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decoding exponent: %w", err)
	}
	if len(n) == 0 || len(e) == 0 || len(e) > 4 {
		return nil, errors.New("modulus or exponent out of range")
	}

	exp := new(big.Int).SetBytes(e)
	return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: int(exp.Int64())}, nil
}
