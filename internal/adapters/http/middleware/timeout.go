package middleware

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dankimjw/portfolio-api/internal/adapters/http/dto"
)

// Timeout gives each request a deadline. The handler's response is held
// back until it returns; if the deadline passes first the client gets a
// 504 problem instead and later writes fail with http.ErrHandlerTimeout.
// Panics are re-raised on the serving goroutine for Recovery.
func Timeout(limit time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			held := &heldResponse{header: make(http.Header)}
			finished := make(chan any, 1)
			go func() {
				defer func() { finished <- recover() }()
				next.ServeHTTP(held, r.WithContext(ctx))
			}()

			select {
			case p := <-finished:
				if p != nil {
					panic(p)
				}
				held.release(w)
			case <-ctx.Done():
				held.expire()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", limit, context.DeadlineExceeded))
			}
		})
	}
}

// heldResponse buffers a handler's response until Timeout decides its fate.
type heldResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (h *heldResponse) Header() http.Header {
	return h.header
}

func (h *heldResponse) WriteHeader(code int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status == 0 && !h.expired {
		h.status = code
	}
}

func (h *heldResponse) Write(b []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.expired {
		return 0, http.ErrHandlerTimeout
	}
	if h.status == 0 {
		h.status = http.StatusOK
	}
	return h.body.Write(b)
}

func (h *heldResponse) expire() {
	h.mu.Lock()
	h.expired = true
	h.mu.Unlock()
}

// release copies the finished response to w.
func (h *heldResponse) release(w http.ResponseWriter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, v := range h.header {
		w.Header()[k] = v
	}
	if h.status != 0 {
		w.WriteHeader(h.status)
	}
	if h.body.Len() > 0 {
		_, _ = w.Write(h.body.Bytes())
	}
}
