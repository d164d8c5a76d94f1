package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
)

var errPanicked = errors.New("internal server error")

// Recovery converts a handler panic into a 500 problem response, unless the
// handler had already started writing, and logs the panic value with its
// stack. http.ErrAbortHandler passes through so net/http can drop the
// connection without noise.
func Recovery(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				if v := recover(); v != nil {
					recovered(logger, rec, r, v)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}

func recovered(logger *slog.Logger, rec *statusRecorder, r *http.Request, v any) {
	if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
		panic(v)
	}

	ctx := r.Context()
	logger.LogAttrs(ctx, slog.LevelError, "panic recovered",
		slog.String("request_id", RequestIDFromContext(ctx)),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("panic", fmt.Sprint(v)),
		slog.String("stack", string(debug.Stack())),
	)
	if rec.committed {
		return
	}
	dto.WriteErrorResponse(rec, r, errPanicked)
}
