package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dankimjw/portfolio-api/internal/platform/logging"
)

// rollbackTimeout bounds compensation, which outlives the caller's deadline.
const rollbackTimeout = 10 * time.Second

// rollbackContext keeps ctx's values but not its cancellation, so a request
// that timed out between two writes still gets its first write undone.
func rollbackContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
}

// Commit applies the staged steps in order. When a step fails, the steps
// before it are undone newest first on a rollbackContext and the failure is
// returned; rollback errors are only logged. A RequestContext can be
// committed once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	steps := rc.steps
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, s := range steps {
		logger.DebugContext(ctx, "applying write",
			slog.Int("step", i+1),
			slog.Int("of", len(steps)),
			slog.String("write", s.String()),
		)
		if err := s.apply(ctx); err != nil {
			logger.WarnContext(ctx, "write failed, rolling back plan",
				slog.Int("step", i+1),
				slog.String("write", s.String()),
				slog.Any("error", err),
			)
			undoCtx, cancel := rollbackContext(ctx)
			for j := i - 1; j >= 0; j-- {
				steps[j].undo(undoCtx)
			}
			cancel()
			return fmt.Errorf("%s: %w", s, err)
		}
	}
	return nil
}
