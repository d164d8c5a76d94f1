package middleware

import "net/http"

// Middleware is the shape shared by every function in this package.
type Middleware = func(http.Handler) http.Handler

// Chain folds mws into one middleware, outermost first, so
// Chain(Recovery, Logging)(h) serves Recovery(Logging(h)). Nil entries are
// skipped, which lets callers leave optional layers unset.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				h = mws[i](h)
			}
		}
		return h
	}
}
