package httpclient

import (
	"context"
	"net/http"
)

// forwarded names a header copied from the inbound request onto calls made
// on its behalf.
type forwarded string

const (
	forwardRequestID     forwarded = "X-Request-ID"
	forwardCorrelationID forwarded = "X-Correlation-ID"
)

// WithRequestID marks id to be sent as X-Request-ID on outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, forwardRequestID, id)
}

// WithCorrelationID marks id to be sent as X-Correlation-ID on outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, forwardCorrelationID, id)
}

func forwardIDs(ctx context.Context, h http.Header) {
	for _, name := range [...]forwarded{forwardRequestID, forwardCorrelationID} {
		if id, _ := ctx.Value(name).(string); id != "" {
			h.Set(string(name), id)
		}
	}
}
