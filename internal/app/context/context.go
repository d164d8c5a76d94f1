// Package appctx holds request-scoped state for the coordinator: a read cache
// so each document is fetched at most once per request, and an ordered write
// plan that Commit applies with compensation on failure.
//
//	rc := appctx.New(ctx)
//	doc, err := appctx.GetOrFetch(rc, "projects:7", fetchProject)
//	rc.Stage("projects:7", updated, putProject)
//	rc.AddGroup(clearClient, clearMember)
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dankimjw/portfolio-api/internal/domain"
)

var (
	// ErrAlreadyCommitted is returned when writes are staged on, or Commit is
	// called again for, a committed RequestContext.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil action is staged.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch means one cache key was read with two different types.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext is the read cache and write plan of one request or one
// coordinator operation. The cache is meant for a single goroutine; staging
// is safe from several.
type RequestContext struct {
	context.Context

	cache map[string]cached

	mu        sync.Mutex
	steps     []step
	committed bool
}

type cached struct {
	value any
	err   error
}

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// New returns an empty RequestContext bound to ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, cache: make(map[string]cached)}
}

// GetOrFetch returns the value cached under key, calling fetch on a miss.
// Errors are cached too, so a missing document is looked up only once.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if c, ok := rc.cache[key]; ok {
		if c.err != nil {
			return zero, c.err
		}
		v, ok := c.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, key, c.value, zero)
		}
		return v, nil
	}

	v, err := fetch(rc.Context)
	rc.cache[key] = cached{value: v, err: err}
	return v, err
}

// Stage queues action and caches entity under key, so later reads in the
// same plan see the pending write.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	if err := rc.enqueue(&single{action: action}); err != nil {
		return err
	}
	rc.cache[key] = cached{value: entity}
	return nil
}

func (rc *RequestContext) enqueue(s step) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.steps = append(rc.steps, s)
	return nil
}
