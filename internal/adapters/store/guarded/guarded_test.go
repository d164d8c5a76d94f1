package guarded_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/dankimjw/portfolio-api/internal/adapters/store/guarded"
	"github.com/dankimjw/portfolio-api/internal/adapters/store/memory"
	"github.com/dankimjw/portfolio-api/internal/adapters/store/storetest"
	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func breakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{MaxFailures: 2, Timeout: time.Minute, HalfOpenLimit: 1}
}

// failingStore fails every call with err.
type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, domain.Kind, int64) (domain.Document, error) {
	return domain.Document{}, f.err
}

func (f failingStore) Put(context.Context, domain.Document) (domain.Document, error) {
	return domain.Document{}, f.err
}

func (f failingStore) Delete(context.Context, domain.Kind, int64) error { return f.err }

func (f failingStore) Query(context.Context, domain.Kind, []domain.Filter, domain.Page) (domain.PageResult, error) {
	return domain.PageResult{}, f.err
}

func TestStore_Contract(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test")
	require.NoError(t, err)

	storetest.Run(t, func(_ *testing.T) ports.DocumentStore {
		return guarded.New(memory.New(), "document-store", breakerConfig(), metrics, discardLogger())
	})
}

func TestStore_BreakerOpensOnStoreFailures(t *testing.T) {
	t.Parallel()

	s := guarded.New(failingStore{err: errors.New("connection refused")}, "document-store",
		breakerConfig(), nil, discardLogger())
	ctx := context.Background()

	for range 2 {
		_, err := s.Get(ctx, domain.KindProject, 1)
		require.Error(t, err)
	}

	_, err := s.Get(ctx, domain.KindProject, 1)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Error(t, s.HealthCheck(ctx))
}

func TestStore_NotFoundDoesNotTrip(t *testing.T) {
	t.Parallel()

	s := guarded.New(memory.New(), "document-store", breakerConfig(), nil, discardLogger())
	ctx := context.Background()

	for range 5 {
		_, err := s.Get(ctx, domain.KindProject, 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
	}

	require.NoError(t, s.HealthCheck(ctx))
}

func TestStore_RejectedTransactionDoesNotTrip(t *testing.T) {
	t.Parallel()

	s := guarded.New(memory.New(), "document-store", breakerConfig(), nil, discardLogger())
	ctx := context.Background()

	for range 5 {
		err := s.InTx(ctx, func(context.Context, ports.DocumentStore) error {
			return domain.ErrAlreadyLinked
		})
		require.ErrorIs(t, err, domain.ErrAlreadyLinked)
	}

	require.NoError(t, s.HealthCheck(ctx))
	assert.True(t, s.SupportsTx())
}

func TestStore_InTxWithoutTransactor(t *testing.T) {
	t.Parallel()

	s := guarded.New(failingStore{}, "document-store", breakerConfig(), nil, discardLogger())

	err := s.InTx(context.Background(), func(context.Context, ports.DocumentStore) error { return nil })

	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.False(t, s.SupportsTx())
}
