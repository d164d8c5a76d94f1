// Package health runs the readiness checks behind GET /health/ready.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dankimjw/portfolio-api/internal/ports"
)

// checkTimeout bounds a single check so one hung dependency cannot stall
// the probe.
const checkTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is safe for concurrent use. Registering a second checker under
// an existing name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
}

func New() *Registry {
	return &Registry{checkers: make(map[string]ports.HealthChecker)}
}

func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers[checker.Name()] = checker
	r.mu.Unlock()
}

// CheckAll runs every check concurrently, each under checkTimeout.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		snapshot[name] = c
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]error, len(snapshot))
		g       errgroup.Group
	)
	for name, c := range snapshot {
		g.Go(func() error {
			err := check(ctx, c)
			mu.Lock()
			results[name] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func check(ctx context.Context, c ports.HealthChecker) (err error) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("health check panicked: %v", v)
		}
	}()
	return c.HealthCheck(ctx)
}
