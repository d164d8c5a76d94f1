package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/dankimjw/portfolio-api/internal/platform/logging"
)

// fetched is the outcome of the last try: the status, when a response
// arrived, and its bounded body.
type fetched struct {
	status int
	body   []byte
}

// StatusError is a non-2xx answer from the peer.
type StatusError struct {
	Peer string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s answered HTTP %d", e.Peer, e.Code)
}

// Temporary reports whether another try may succeed.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

// fetch runs the retry loop for one GET inside a single client span.
func (c *Client) fetch(ctx context.Context, url string) (fetched, error) {
	ctx, span := c.startSpan(ctx, url)
	defer span.End()

	var (
		res  fetched
		err  error
		wait time.Duration
	)
	for try := 1; ; try++ {
		res, wait, err = c.try(ctx, url)
		if err == nil || !retryable(err) || try >= c.backoff.attempts {
			break
		}
		if perr := c.pause(ctx, url, try, wait, err); perr != nil {
			res, err = fetched{}, perr
			break
		}
	}
	endSpan(span, res.status, err)
	return res, err
}

// try makes one request. wait is the delay a Retry-After header asked for.
func (c *Client) try(ctx context.Context, url string) (fetched, time.Duration, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fetched{}, 0, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fetched{}, 0, fmt.Errorf("building %s request: %w", c.peer, &permanent{err})
	}
	req.Header.Set("Accept", "application/json")
	forwardIDs(ctx, req.Header)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fetched{}, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	res := fetched{status: resp.StatusCode}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return res, retryAfter(resp.Header, c.backoff.ceiling), &StatusError{Peer: c.peer, Code: resp.StatusCode}
	}

	res.body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return res, 0, fmt.Errorf("reading %s response: %w", c.peer, err)
	}
	if len(res.body) > maxBodyBytes {
		return res, 0, fmt.Errorf("%s response exceeds %d bytes: %w", c.peer, maxBodyBytes, &permanent{errTooLarge})
	}
	return res, 0, nil
}

func (c *Client) pause(ctx context.Context, url string, try int, wait time.Duration, cause error) error {
	delay := max(c.backoff.delay(try), wait)
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("peer_service", c.peer),
		slog.String("url", url),
		slog.Int("attempt", try+1),
		slog.Int("max_attempts", c.backoff.attempts),
		slog.Duration("backoff", delay),
		slog.Any("error", cause),
	)

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var errTooLarge = errors.New("response body too large")

// permanent marks an error no retry can fix.
type permanent struct{ err error }

func (p *permanent) Error() string { return p.err.Error() }
func (p *permanent) Unwrap() error { return p.err }

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var p *permanent
	if errors.As(err, &p) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}

// retryAfter honors a Retry-After given in seconds, capped at ceiling.
// HTTP-date values are ignored.
func retryAfter(h http.Header, ceiling time.Duration) time.Duration {
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return min(time.Duration(secs)*time.Second, ceiling)
}
