// Package guarded decorates a document store with a circuit breaker,
// OpenTelemetry spans and operation metrics, and reports its health to the
// readiness registry.
package guarded

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

var (
	_ ports.DocumentStore = (*Store)(nil)
	_ ports.Transactor    = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store wraps another DocumentStore.
type Store struct {
	inner   ports.DocumentStore
	name    string
	breaker *gobreaker.CircuitBreaker[any] // nil inside a transaction
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// New wraps inner. name identifies the store in traces, metrics and health
// output. If metrics is nil, metric recording is skipped.
func New(inner ports.DocumentStore, name string, cfg config.CircuitBreakerConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Store {
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return &Store{
		inner:   inner,
		name:    name,
		breaker: cb,
		metrics: metrics,
		tracer:  otel.GetTracerProvider().Tracer("store"),
	}
}

// isSuccessful keeps caller-level outcomes from tripping the breaker: a
// missing document, a rejected relationship change inside a transaction, or a
// canceled request says nothing about store health.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	for _, target := range []error{
		domain.ErrNotFound, domain.ErrConflict, domain.ErrValidation,
		domain.ErrForbidden, domain.ErrUnauthorized, context.Canceled,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return s.name }

// HealthCheck implements ports.HealthChecker. An open breaker fails fast;
// otherwise the inner store is pinged when it supports it.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", s.name)
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", s.name)
	}
	if hc, ok := s.inner.(ports.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

// Get implements ports.DocumentStore.
func (s *Store) Get(ctx context.Context, kind domain.Kind, id int64) (domain.Document, error) {
	var doc domain.Document
	err := s.do(ctx, "get", kind, func(ctx context.Context) error {
		var err error
		doc, err = s.inner.Get(ctx, kind, id)
		return err
	})
	return doc, err
}

// Put implements ports.DocumentStore.
func (s *Store) Put(ctx context.Context, doc domain.Document) (domain.Document, error) {
	var out domain.Document
	err := s.do(ctx, "put", doc.Kind, func(ctx context.Context) error {
		var err error
		out, err = s.inner.Put(ctx, doc)
		return err
	})
	return out, err
}

// Delete implements ports.DocumentStore.
func (s *Store) Delete(ctx context.Context, kind domain.Kind, id int64) error {
	return s.do(ctx, "delete", kind, func(ctx context.Context) error {
		return s.inner.Delete(ctx, kind, id)
	})
}

// Query implements ports.DocumentStore.
func (s *Store) Query(ctx context.Context, kind domain.Kind, filters []domain.Filter, page domain.Page) (domain.PageResult, error) {
	var res domain.PageResult
	err := s.do(ctx, "query", kind, func(ctx context.Context) error {
		var err error
		res, err = s.inner.Query(ctx, kind, filters, page)
		return err
	})
	return res, err
}

// InTx implements ports.Transactor. The whole transaction counts as one
// breaker call; operations inside it are traced but not gated again.
// Returns domain.ErrUnavailable if the inner store has no transactions.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, tx ports.DocumentStore) error) error {
	txr, ok := s.inner.(ports.Transactor)
	if !ok {
		return fmt.Errorf("%s: transactions not supported: %w", s.name, domain.ErrUnavailable)
	}
	return s.do(ctx, "tx", "", func(ctx context.Context) error {
		return txr.InTx(ctx, func(ctx context.Context, tx ports.DocumentStore) error {
			return fn(ctx, &Store{inner: tx, name: s.name, metrics: s.metrics, tracer: s.tracer})
		})
	})
}

// SupportsTx reports whether the wrapped store implements ports.Transactor.
func (s *Store) SupportsTx() bool {
	_, ok := s.inner.(ports.Transactor)
	return ok
}

func (s *Store) do(ctx context.Context, op string, kind domain.Kind, fn func(ctx context.Context) error) error {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", s.name),
			telemetry.AttrStoreOperation.String(op),
			telemetry.AttrDocumentKind.String(string(kind)),
		),
	)
	defer span.End()

	var err error
	if s.breaker == nil {
		err = fn(ctx)
	} else {
		_, err = s.breaker.Execute(func() (any, error) {
			return nil, fn(ctx)
		})
	}

	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s: %w: %w", s.name, domain.ErrUnavailable, err)
	}

	s.record(ctx, op, kind, start, err)
	return err
}

func (s *Store) record(ctx context.Context, op string, kind domain.Kind, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrUnavailable):
		result = "circuit_open"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreOperation.String(op),
		telemetry.AttrDocumentKind.String(string(kind)),
		telemetry.AttrResult.String(result),
	)
	s.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
