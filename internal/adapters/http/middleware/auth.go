package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/logging"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

type identityKey struct{}

// WithIdentity stores the verified caller in ctx.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller stored by Authenticate.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}

// Authenticate returns middleware that requires a valid bearer token. The
// verified identity is stored with WithIdentity and its sub is added to the
// request logger. Missing or rejected tokens get a 401 problem response.
func Authenticate(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w, r, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized))
				return
			}

			id, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "token rejected",
					slog.Any("error", err),
				)
				unauthorized(w, r, err)
				return
			}

			ctx := WithIdentity(r.Context(), id)
			ctx = logging.With(ctx, slog.String("sub", id.Sub))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns middleware that lets only registered admins through.
// It must run after Authenticate. Unregistered callers get 401, registered
// non-admins 403.
func RequireAdmin(users ports.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				unauthorized(w, r, fmt.Errorf("no authenticated caller: %w", domain.ErrUnauthorized))
				return
			}
			if err := users.RequireAdmin(r.Context(), id.Sub); err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="portfolio-api"`)
	dto.WriteErrorResponse(w, r, err)
}
