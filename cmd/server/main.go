// Package main is the entry point for the portfolio API. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/dankimjw/portfolio-api/internal/adapters/auth"
	adapthttp "github.com/dankimjw/portfolio-api/internal/adapters/http"
	"github.com/dankimjw/portfolio-api/internal/adapters/http/handlers"
	"github.com/dankimjw/portfolio-api/internal/adapters/http/middleware"
	"github.com/dankimjw/portfolio-api/internal/adapters/store"

	"github.com/dankimjw/portfolio-api/internal/app"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/health"
	"github.com/dankimjw/portfolio-api/internal/platform/httpclient"
	"github.com/dankimjw/portfolio-api/internal/platform/logging"
	"github.com/dankimjw/portfolio-api/internal/platform/telemetry"
	"github.com/dankimjw/portfolio-api/internal/ports"
	"github.com/dankimjw/portfolio-api/internal/validate"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, sqlite, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(ctx, injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	opened := do.MustInvoke[*store.Opened](injector)
	registry.Register(opened.Store)
	if ta := do.MustInvoke[*tokenAuth](injector); ta.jwks != nil {
		registry.Register(ta.jwks)
	}

	ln, err := server.Listen()
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := server.Run(sigCtx, ln)
	if runErr != nil {
		runErr = fmt.Errorf("server failed: %w", runErr)
	}

	if err := opened.Close(); err != nil {
		logger.Error("document store close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}

// otelProviders holds what initTelemetry started. The zero value, used when
// telemetry is off, has nothing to flush and nil metrics.
type otelProviders struct {
	metrics *telemetry.Metrics
	flush   []func(context.Context) error
}

// Shutdown flushes and stops the providers, newest first.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(o.flush) - 1; i >= 0; i-- {
		errs = append(errs, o.flush[i](ctx))
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	o := &otelProviders{}
	tc := cfg.Telemetry
	if !tc.Enabled {
		return o, nil
	}

	tp, err := telemetry.InitTracer(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	o.flush = append(o.flush, tp.Shutdown)

	mp, err := telemetry.InitMeter(ctx, tc.ServiceName, tc.Exporter, tc.Endpoint)
	if err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	o.flush = append(o.flush, mp.Shutdown)

	if o.metrics, err = telemetry.NewMetrics(mp, tc.ServiceName); err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}

// tokenAuth pairs the verifier with its key cache, which is nil in hmac mode.
type tokenAuth struct {
	verifier *auth.Verifier
	jwks     *auth.JWKS
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Outbound adapters.
	do.Provide(injector, func(i do.Injector) (*store.Opened, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return store.Open(ctx, cfg.Store, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentStore, error) {
		return do.MustInvoke[*store.Opened](i).Store, nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "jwks", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*tokenAuth, error) {
		verifier, jwks, err := auth.NewVerifier(cfg.Auth, do.MustInvoke[*httpclient.Client](i), logger)
		if err != nil {
			return nil, fmt.Errorf("building token verifier: %w", err)
		}
		return &tokenAuth{verifier: verifier, jwks: jwks}, nil
	})

	// Application layer.
	do.Provide(injector, func(i do.Injector) (*app.Coordinator, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewCoordinator(do.MustInvoke[ports.DocumentStore](i), cfg.Store, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*validate.Validator, error) {
		return validate.New(validate.NewTable(), do.MustInvoke[*app.Coordinator](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		return app.NewProjectService(
			do.MustInvoke[ports.DocumentStore](i),
			do.MustInvoke[*app.Coordinator](i),
			do.MustInvoke[*validate.Validator](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ClientService, error) {
		return app.NewClientService(
			do.MustInvoke[ports.DocumentStore](i),
			do.MustInvoke[*app.Coordinator](i),
			do.MustInvoke[*validate.Validator](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TeamMemberService, error) {
		return app.NewTeamMemberService(
			do.MustInvoke[ports.DocumentStore](i),
			do.MustInvoke[*app.Coordinator](i),
			do.MustInvoke[*validate.Validator](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(do.MustInvoke[ports.DocumentStore](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Inbound HTTP adapter.
	do.Provide(injector, func(i do.Injector) (adapthttp.Routes, error) {
		users := do.MustInvoke[ports.UserService](i)
		return adapthttp.Routes{
			Projects:     handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i), cfg.Pagination),
			Clients:      handlers.NewClientHandler(do.MustInvoke[ports.ClientService](i), cfg.Pagination),
			TeamMembers:  handlers.NewTeamMemberHandler(do.MustInvoke[ports.TeamMemberService](i), cfg.Pagination),
			Users:        handlers.NewUserHandler(users, cfg.Pagination),
			Health:       handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Authenticate: middleware.Authenticate(do.MustInvoke[*tokenAuth](i).verifier),
			RequireAdmin: middleware.RequireAdmin(users),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes := do.MustInvoke[adapthttp.Routes](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(routes, middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
			middleware.Negotiate(),
		)), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
