// Package main is the reconcile command. It scans every project, client and
// team member for edges whose two sides disagree, optionally repairs them,
// and exits 1 when drift remains.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/dankimjw/portfolio-api/internal/adapters/store"
	"github.com/dankimjw/portfolio-api/internal/app"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
	"github.com/dankimjw/portfolio-api/internal/platform/logging"
)

var errDriftRemains = errors.New("drift remains")

type options struct {
	profile string
	repair  bool
	workers int
	format  string
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, pflag.ErrHelp):
	case errors.Is(err, errDriftRemains):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func parseFlags(args []string) (options, error) {
	opts := options{profile: os.Getenv("APP_PROFILE")}

	flagSet := pflag.NewFlagSet("reconcile", pflag.ContinueOnError)
	flagSet.StringVar(&opts.profile, "profile", opts.profile, "configuration profile (defaults to $APP_PROFILE)")
	flagSet.BoolVar(&opts.repair, "repair", false, "repair the drift found instead of only reporting it")
	flagSet.IntVar(&opts.workers, "workers", 0, "concurrent edge checks (overrides reconcile.workers)")
	flagSet.StringVar(&opts.format, "format", "text", "report format: text or json")

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return opts, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if opts.profile == "" {
		return opts, errors.New("--profile or APP_PROFILE is required")
	}
	if opts.format != "text" && opts.format != "json" {
		return opts, fmt.Errorf("--format must be text or json, got %q", opts.format)
	}
	if opts.workers < 0 {
		return opts, fmt.Errorf("--workers must not be negative, got %d", opts.workers)
	}
	return opts, nil
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.workers > 0 {
		cfg.Reconcile.Workers = opts.workers
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opened, err := store.Open(ctx, cfg.Store, nil, logger)
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}
	defer func() {
		if err := opened.Close(); err != nil {
			logger.Error("document store close error", slog.Any("error", err))
		}
	}()

	coord := app.NewCoordinator(opened.Store, cfg.Store, nil, logger)
	reconciler := app.NewReconciler(opened.Store, coord, cfg.Reconcile, nil, logger)

	report, err := reconciler.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	if opts.repair && len(report.Drifts) > 0 {
		repaired, err := reconciler.Repair(ctx, report)
		if err != nil {
			return fmt.Errorf("repairing: %w", err)
		}
		logger.Info("repair finished",
			slog.Int("found", len(report.Drifts)),
			slog.Int("repaired", repaired),
		)

		if report, err = reconciler.Scan(ctx); err != nil {
			return fmt.Errorf("rescanning: %w", err)
		}
	}

	if err := writeReport(out, opts.format, report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if len(report.Drifts) > 0 {
		return errDriftRemains
	}
	return nil
}

func writeReport(w io.Writer, format string, report *app.Report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	s := report.Stats
	fmt.Fprintf(w, "scanned %d projects, %d clients, %d team members, %d edges\n",
		s.Projects, s.Clients, s.TeamMembers, s.Edges)
	if len(report.Drifts) == 0 {
		_, err := fmt.Fprintln(w, "no drift")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tSIDE\tEDGE\tDETAIL")
	for _, d := range report.Drifts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Type, d.Side, d.Edge, d.Detail)
	}
	return tw.Flush()
}
