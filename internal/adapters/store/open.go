// Package store selects and opens the configured document store adapter and
// wraps it in the guarded decorator.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dankimjw/portfolio-api/internal/adapters/store/guarded"
	"github.com/dankimjw/portfolio-api/internal/adapters/store/memory"
	"github.com/dankimjw/portfolio-api/internal/adapters/store/postgres"
	"github.com/dankimjw/portfolio-api/internal/adapters/store/sqlite"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
	"github.com/dankimjw/portfolio-api/internal/ports"
)

// Opened is a ready store plus the function that releases it.
type Opened struct {
	Store *guarded.Store
	Close func() error
}

// Open builds the adapter named by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Opened, error) {
	var (
		inner   ports.DocumentStore
		closeFn = func() error { return nil }
	)

	switch cfg.Driver {
	case "memory":
		inner = memory.New()
	case "sqlite":
		s, err := sqlite.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		inner, closeFn = s, s.Close
	case "postgres":
		s, err := postgres.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		inner, closeFn = s, s.Close
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}

	logger.Info("document store opened", slog.String("driver", cfg.Driver))

	return &Opened{
		Store: guarded.New(inner, "document-store", cfg.CircuitBreaker, metrics, logger),
		Close: closeFn,
	}, nil
}
