package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dankimjw/portfolio-api/internal/platform/config"
)

const fallbackDrain = 10 * time.Second

// Server serves the API until its context ends, then drains in-flight
// requests for at most the configured drain timeout.
type Server struct {
	srv    *http.Server
	drain  time.Duration
	logger *slog.Logger
}

func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	drain := cfg.DrainTimeout
	if drain <= 0 {
		drain = fallbackDrain
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		drain:  drain,
		logger: logger,
	}
}

// Listen binds the configured address. Port 0 picks a free port; the
// listener's Addr reports which.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return ln, nil
}

// Run serves on ln until ctx is canceled or serving fails. A canceled
// context is a clean stop and returns nil once draining finishes.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("serving HTTP", slog.String("addr", ln.Addr().String()))
		if err := s.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving HTTP: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.drain)
		defer cancel()

		s.logger.Info("draining HTTP server", slog.Duration("timeout", s.drain))
		if err := s.srv.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("draining HTTP server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Addr is the configured listen address, before any port 0 resolution.
func (s *Server) Addr() string {
	return s.srv.Addr
}
