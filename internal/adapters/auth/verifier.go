// Package auth verifies the bearer tokens callers present. Tokens are JWTs
// signed either with a shared HS256 secret or with RS256 keys published at a
// JWKS URL. The verified sub, name and email become a domain.Identity.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// Verification modes accepted in auth.mode.
const (
	ModeHMAC = "hmac"
	ModeJWKS = "jwks"
)

// leeway absorbs clock skew between the issuer and this service.
const leeway = 30 * time.Second

var _ ports.TokenVerifier = (*Verifier)(nil)

// Claims are the token claims the service reads.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// KeySource resolves the verification key for a token's kid header.
type KeySource interface {
	Key(ctx context.Context, kid string) (any, error)
}

// Verifier implements ports.TokenVerifier.
type Verifier struct {
	keys   KeySource
	parser *jwt.Parser
	logger *slog.Logger
}

// NewVerifier builds a verifier for cfg.Mode. fetcher is only used in jwks
// mode and may be nil otherwise. The returned JWKS is non-nil in jwks mode
// so callers can register it as a health check.
func NewVerifier(cfg config.AuthConfig, fetcher Fetcher, logger *slog.Logger) (*Verifier, *JWKS, error) {
	switch cfg.Mode {
	case ModeHMAC:
		if cfg.HMACSecret == "" {
			return nil, nil, errors.New("auth: hmac mode requires a secret")
		}
		return newVerifier(staticKey([]byte(cfg.HMACSecret)), jwt.SigningMethodHS256.Alg(), cfg, logger), nil, nil
	case ModeJWKS:
		if fetcher == nil {
			return nil, nil, errors.New("auth: jwks mode requires an HTTP fetcher")
		}
		jwks := NewJWKS(fetcher, cfg.JWKSURL, cfg.JWKSCacheTTL, logger)
		return newVerifier(jwks, jwt.SigningMethodRS256.Alg(), cfg, logger), jwks, nil
	default:
		return nil, nil, fmt.Errorf("auth: unknown mode %q", cfg.Mode)
	}
}

func newVerifier(keys KeySource, alg string, cfg config.AuthConfig, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{alg}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Verifier{keys: keys, parser: jwt.NewParser(opts...), logger: logger}
}

// Verify parses and validates token. Failures wrap domain.ErrUnauthorized,
// except a key source that cannot be reached, which wraps
// domain.ErrUnavailable.
func (v *Verifier) Verify(ctx context.Context, token string) (domain.Identity, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			v.logger.ErrorContext(ctx, "signing keys unavailable",
				slog.String("operation", "Verify"),
				slog.Any("error", err),
			)
			return domain.Identity{}, fmt.Errorf("verifying token: %w", err)
		}
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("%w: token has no sub claim", domain.ErrUnauthorized)
	}

	return domain.Identity{Sub: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}

// staticKey serves one shared secret regardless of kid.
type staticKey []byte

func (k staticKey) Key(context.Context, string) (any, error) {
	return []byte(k), nil
}
