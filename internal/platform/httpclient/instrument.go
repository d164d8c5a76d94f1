package httpclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
)

const tracerName = "github.com/dankimjw/portfolio-api/internal/platform/httpclient"

// Values of the result metric attribute.
const (
	resultSuccess     = "success"
	resultError       = "error"
	resultCircuitOpen = "circuit_open"
)

func (c *Client) startSpan(ctx context.Context, url string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		telemetry.AttrHTTPMethod.String(http.MethodGet),
		telemetry.AttrPeerService.String(c.peer),
		attribute.String("http.url", url),
	}
	return otel.Tracer(tracerName).Start(ctx, "HTTP GET "+c.peer,
		trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, status int, err error) {
	if status > 0 {
		span.SetAttributes(telemetry.AttrHTTPStatus.Int(status))
	}
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return resultCircuitOpen
	default:
		return resultError
	}
}

// observe counts one GetJSON call, including ones the breaker refused.
func (c *Client) observe(ctx context.Context, start time.Time, status int, err error) {
	if c.metrics == nil {
		return
	}
	set := metric.WithAttributes(
		telemetry.AttrPeerService.String(c.peer),
		telemetry.AttrHTTPMethod.String(http.MethodGet),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrResult.String(outcome(err)),
	)
	c.metrics.ClientRequestTotal.Add(ctx, 1, set)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), set)
}
