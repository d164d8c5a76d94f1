package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/middleware"
	appctx "github.com/dankimjw/portfolio-api/internal/app/context"
)

func tag(trace *[]string, name string) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, "in "+name)
			next.ServeHTTP(w, r)
			*trace = append(*trace, "out "+name)
		})
	}
}

func TestChain_Nesting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(trace *[]string) []middleware.Middleware
		want  []string
	}{
		{
			name:  "no middleware serves the handler directly",
			build: func(*[]string) []middleware.Middleware { return nil },
			want:  []string{"handler"},
		},
		{
			name: "first argument is outermost",
			build: func(trace *[]string) []middleware.Middleware {
				return []middleware.Middleware{tag(trace, "outer"), tag(trace, "inner")}
			},
			want: []string{"in outer", "in inner", "handler", "out inner", "out outer"},
		},
		{
			name: "nil layers are skipped",
			build: func(trace *[]string) []middleware.Middleware {
				return []middleware.Middleware{nil, tag(trace, "only"), nil}
			},
			want: []string{"in only", "handler", "out only"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var trace []string
			h := middleware.Chain(tt.build(&trace)...)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				trace = append(trace, "handler")
				w.WriteHeader(http.StatusNoContent)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects", http.NoBody))

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, trace)
		})
	}
}

func TestChain_ServerPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := testLogger(&buf)

	h := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.AppContext(),
		middleware.Logging(logger),
		middleware.Timeout(5*time.Second),
		middleware.Negotiate(),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		assert.NotEmpty(t, middleware.RequestIDFromContext(ctx))
		assert.NotEmpty(t, middleware.CorrelationIDFromContext(ctx))
		assert.NotNil(t, appctx.FromContext(ctx))
		_, _ = w.Write([]byte(`{"clients":[]}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", http.NoBody)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, buf.String(), "request started")
	assert.Contains(t, buf.String(), "bytes=14")
}
