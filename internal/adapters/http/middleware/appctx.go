package middleware

import (
	"net/http"

	appctx "github.com/dankimjw/portfolio-api/internal/app/context"
)

// AppContext returns middleware that gives each request its own
// RequestContext. The relationship coordinator reads documents through it, so
// a project or member resolved twice while validating and linking one request
// is fetched from the store once.
//
// Register it after RequestID so the RequestContext wraps a context that
// already carries the request and correlation ids.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
