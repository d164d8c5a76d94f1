package ports

import (
	"context"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

// TokenVerifier validates a bearer token and returns the caller it names.
// Implemented by the auth adapter; called by the authentication middleware.
type TokenVerifier interface {
	// Verify returns domain.ErrUnauthorized wrapped with the reason when the
	// token is malformed, expired, signed by an unknown key, or issued for
	// another audience.
	Verify(ctx context.Context, token string) (domain.Identity, error)
}
