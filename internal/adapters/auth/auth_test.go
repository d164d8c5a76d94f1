package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/httpclient"
)

const (
	testSecret   = "local-development-secret"
	testIssuer   = "https://portfolio.example.auth0.com/"
	testAudience = "portfolio-api"
)

var signingKeys = sync.OnceValues(func() (*rsa.PrivateKey, *rsa.PrivateKey) {
	a, errA := rsa.GenerateKey(rand.Reader, 2048)
	b, errB := rsa.GenerateKey(rand.Reader, 2048)
	if errA != nil || errB != nil {
		panic("generating rsa keys")
	}
	return a, b
})

func claims(mutate ...func(*Claims)) *Claims {
	c := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "auth0|ada",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	}
	for _, m := range mutate {
		m(c)
	}
	return c
}

func signHS(t *testing.T, secret string, c *Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func signRS(t *testing.T, key *rsa.PrivateKey, kid string, c *Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, c)
	if kid != "" {
		tok.Header["kid"] = kid
	}
	s, err := tok.SignedString(key)
	require.NoError(t, err)
	return s
}

func publicJWK(kid string, key *rsa.PrivateKey) jwk {
	return jwk{
		Kty: "RSA",
		Kid: kid,
		Use: "sig",
		Alg: "RS256",
		N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
	}
}

// fakeFetcher serves a fixed key set and counts fetches.
type fakeFetcher struct {
	mu    sync.Mutex
	set   jwkSet
	err   error
	calls atomic.Int32
}

func (f *fakeFetcher) GetJSON(_ context.Context, _ string, dst any) error {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	b, err := json.Marshal(f.set)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func (f *fakeFetcher) serve(set jwkSet, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set, f.err = set, err
}

func hmacConfig() config.AuthConfig {
	return config.AuthConfig{Mode: ModeHMAC, HMACSecret: testSecret, Issuer: testIssuer, Audience: testAudience}
}

func jwksConfig(url string) config.AuthConfig {
	return config.AuthConfig{Mode: ModeJWKS, JWKSURL: url, Issuer: testIssuer, Audience: testAudience, JWKSCacheTTL: 10 * time.Minute}
}

func TestNewVerifier_Config(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      config.AuthConfig
		fetcher  Fetcher
		wantErr  bool
		wantJWKS bool
	}{
		{name: "hmac", cfg: hmacConfig()},
		{name: "hmac without secret", cfg: config.AuthConfig{Mode: ModeHMAC}, wantErr: true},
		{name: "jwks", cfg: jwksConfig("https://issuer.test/jwks.json"), fetcher: &fakeFetcher{}, wantJWKS: true},
		{name: "jwks without fetcher", cfg: jwksConfig("https://issuer.test/jwks.json"), wantErr: true},
		{name: "unknown mode", cfg: config.AuthConfig{Mode: "saml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, jwks, err := NewVerifier(tt.cfg, tt.fetcher, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, v)
			assert.Equal(t, tt.wantJWKS, jwks != nil)
		})
	}
}

func TestVerifier_HMAC(t *testing.T) {
	t.Parallel()

	v, _, err := NewVerifier(hmacConfig(), nil, nil)
	require.NoError(t, err)

	id, err := v.Verify(context.Background(), signHS(t, testSecret, claims()))
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{Sub: "auth0|ada", Name: "Ada Lovelace", Email: "ada@example.com"}, id)
}

func TestVerifier_Rejections(t *testing.T) {
	t.Parallel()

	v, _, err := NewVerifier(hmacConfig(), nil, nil)
	require.NoError(t, err)
	rsaKey, _ := signingKeys()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{name: "malformed", token: func(*testing.T) string { return "not-a-jwt" }},
		{name: "wrong secret", token: func(t *testing.T) string { return signHS(t, "other-secret", claims()) }},
		{name: "expired", token: func(t *testing.T) string {
			return signHS(t, testSecret, claims(func(c *Claims) {
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
			}))
		}},
		{name: "no expiry", token: func(t *testing.T) string {
			return signHS(t, testSecret, claims(func(c *Claims) { c.ExpiresAt = nil }))
		}},
		{name: "wrong issuer", token: func(t *testing.T) string {
			return signHS(t, testSecret, claims(func(c *Claims) { c.Issuer = "https://evil.example/" }))
		}},
		{name: "wrong audience", token: func(t *testing.T) string {
			return signHS(t, testSecret, claims(func(c *Claims) { c.Audience = jwt.ClaimStrings{"billing-api"} }))
		}},
		{name: "missing sub", token: func(t *testing.T) string {
			return signHS(t, testSecret, claims(func(c *Claims) { c.Subject = "" }))
		}},
		{name: "rs256 in hmac mode", token: func(t *testing.T) string { return signRS(t, rsaKey, "k1", claims()) }},
		{name: "unsigned", token: func(t *testing.T) string {
			s, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims()).SignedString(jwt.UnsafeAllowNoneSignatureType)
			require.NoError(t, err)
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := v.Verify(context.Background(), tt.token(t))
			require.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestVerifier_JWKSOverHTTP(t *testing.T) {
	t.Parallel()

	key, _ := signingKeys()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwkSet{Keys: []jwk{publicJWK("k1", key)}})
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(&config.ClientConfig{
		Timeout:        5 * time.Second,
		Retry:          config.RetryConfig{MaxAttempts: 1},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 3, Timeout: time.Second, HalfOpenLimit: 1},
	}, "jwks", nil, nil)

	v, jwks, err := NewVerifier(jwksConfig(srv.URL), client, nil)
	require.NoError(t, err)

	for range 3 {
		id, err := v.Verify(context.Background(), signRS(t, key, "k1", claims()))
		require.NoError(t, err)
		assert.Equal(t, "auth0|ada", id.Sub)
	}
	assert.Equal(t, int32(1), hits.Load(), "keys are cached")
	require.NoError(t, jwks.HealthCheck(context.Background()))
	assert.Equal(t, "jwks", jwks.Name())
}

func TestJWKS_UnknownKidRefetchesAfterMinRefresh(t *testing.T) {
	t.Parallel()

	first, second := signingKeys()
	fetcher := &fakeFetcher{set: jwkSet{Keys: []jwk{publicJWK("k1", first)}}}
	jwks := NewJWKS(fetcher, "https://issuer.test/jwks.json", time.Hour, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	jwks.now = func() time.Time { return now }
	v := newVerifier(jwks, jwt.SigningMethodRS256.Alg(), jwksConfig(""), nil)
	ctx := context.Background()

	_, err := v.Verify(ctx, signRS(t, first, "k1", claims()))
	require.NoError(t, err)

	// Issuer rotates to k2.
	fetcher.serve(jwkSet{Keys: []jwk{publicJWK("k1", first), publicJWK("k2", second)}}, nil)
	rotated := signRS(t, second, "k2", claims())

	_, err = v.Verify(ctx, rotated)
	require.ErrorIs(t, err, domain.ErrUnauthorized, "refetch is rate limited")
	assert.Equal(t, int32(1), fetcher.calls.Load())

	now = now.Add(minRefresh)
	_, err = v.Verify(ctx, rotated)
	require.NoError(t, err)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestJWKS_EmptyKidUsesSoleKey(t *testing.T) {
	t.Parallel()

	key, _ := signingKeys()
	fetcher := &fakeFetcher{set: jwkSet{Keys: []jwk{publicJWK("only", key)}}}
	v := newVerifier(NewJWKS(fetcher, "u", time.Hour, nil), jwt.SigningMethodRS256.Alg(), jwksConfig(""), nil)

	_, err := v.Verify(context.Background(), signRS(t, key, "", claims()))
	require.NoError(t, err)
}

func TestJWKS_Unavailable(t *testing.T) {
	t.Parallel()

	key, _ := signingKeys()
	fetcher := &fakeFetcher{err: domain.ErrUnavailable}
	jwks := NewJWKS(fetcher, "u", time.Minute, nil)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	jwks.now = func() time.Time { return now }
	v := newVerifier(jwks, jwt.SigningMethodRS256.Alg(), jwksConfig(""), nil)
	ctx := context.Background()
	token := signRS(t, key, "k1", claims())

	_, err := v.Verify(ctx, token)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	require.NotErrorIs(t, err, domain.ErrUnauthorized)
	require.ErrorIs(t, jwks.HealthCheck(ctx), domain.ErrUnavailable)

	fetcher.serve(jwkSet{Keys: []jwk{publicJWK("k1", key)}}, nil)
	_, err = v.Verify(ctx, token)
	require.NoError(t, err)

	// Cache expires while the issuer is down: the stale key keeps working.
	fetcher.serve(jwkSet{}, domain.ErrUnavailable)
	now = now.Add(2 * time.Minute)
	_, err = v.Verify(ctx, token)
	require.NoError(t, err)
	require.ErrorIs(t, jwks.HealthCheck(ctx), domain.ErrUnavailable)
}

func TestJWKS_SkipsUnusableKeys(t *testing.T) {
	t.Parallel()

	key, _ := signingKeys()
	good := publicJWK("k1", key)
	enc := good
	enc.Kid, enc.Use = "k-enc", "enc"
	ec := jwk{Kty: "EC", Kid: "k-ec"}
	broken := jwk{Kty: "RSA", Kid: "k-bad", N: "!!", E: "AQAB"}

	fetcher := &fakeFetcher{set: jwkSet{Keys: []jwk{enc, ec, broken, good}}}
	jwks := NewJWKS(fetcher, "u", time.Hour, nil)
	ctx := context.Background()

	got, err := jwks.Key(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, key.PublicKey.Equal(got))

	for _, kid := range []string{"k-enc", "k-ec", "k-bad"} {
		_, err := jwks.Key(ctx, kid)
		require.Error(t, err, kid)
	}

	fetcher.serve(jwkSet{Keys: []jwk{ec}}, nil)
	stale := NewJWKS(fetcher, "u", time.Hour, nil)
	_, err = stale.Key(ctx, "k-ec")
	require.ErrorIs(t, err, domain.ErrUnavailable)
}
