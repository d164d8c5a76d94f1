package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/logging"
)

// step is one entry of the write plan: a single action or a parallel group.
type step interface {
	apply(ctx context.Context) error
	undo(ctx context.Context)
	String() string
}

type single struct {
	action domain.Action
}

func (s *single) apply(ctx context.Context) error { return s.action.Execute(ctx) }

func (s *single) undo(ctx context.Context) {
	if err := s.action.Rollback(ctx); err != nil {
		logRollbackFailure(ctx, s.action, err)
	}
}

func (s *single) String() string { return s.action.Description() }

// group runs its actions concurrently. The first failure cancels the rest
// and the actions that did complete are rolled back in reverse order.
type group struct {
	actions []domain.Action
	applied []domain.Action
}

func (g *group) apply(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	done := make([]bool, len(g.actions))
	for i, a := range g.actions {
		eg.Go(func() error {
			if err := a.Execute(egCtx); err != nil {
				return err
			}
			mu.Lock()
			done[i] = true
			mu.Unlock()
			return nil
		})
	}
	err := eg.Wait()

	g.applied = g.applied[:0]
	for i, ok := range done {
		if ok {
			g.applied = append(g.applied, g.actions[i])
		}
	}
	if err != nil {
		undoCtx, cancel := rollbackContext(ctx)
		g.undo(undoCtx)
		cancel()
		g.applied = nil
	}
	return err
}

func (g *group) undo(ctx context.Context) {
	for i := len(g.applied) - 1; i >= 0; i-- {
		if err := g.applied[i].Rollback(ctx); err != nil {
			logRollbackFailure(ctx, g.applied[i], err)
		}
	}
}

func (g *group) String() string {
	switch len(g.actions) {
	case 0:
		return "empty group"
	case 1:
		return g.actions[0].Description()
	default:
		return fmt.Sprintf("group of %d (%s, ...)", len(g.actions), g.actions[0].Description())
	}
}

func logRollbackFailure(ctx context.Context, a domain.Action, err error) {
	logging.FromContext(ctx).ErrorContext(ctx, "rollback failed",
		slog.String("action", a.Description()),
		slog.Any("error", err),
	)
}

// AddAction queues one action.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(&single{action: action})
}

// AddGroup queues actions that touch disjoint documents and may run in
// parallel.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	return rc.enqueue(&group{actions: actions})
}
