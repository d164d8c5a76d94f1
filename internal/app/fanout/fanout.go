// Package fanout runs a function over a slice with bounded concurrency and
// returns one result per item in input order. Failures are per item: one
// item's error never stops the others.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one item.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most workers calls in flight. Items
// still waiting for a worker when ctx is done get ctx.Err() and fn is not
// called for them. A workers value below 1 is treated as 1.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Errors returns the non-nil errors in results, in input order.
func Errors[R any](results []Result[R]) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}
