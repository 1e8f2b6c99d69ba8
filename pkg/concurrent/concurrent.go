package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each item in its own goroutine, at most limit at
// a time (limit <= 0 means no limit). It returns the first error, and the
// context passed to action is cancelled once any action fails.
func Concurrent[T any](ctx context.Context, items []T, limit int, action func(context.Context, T) error) error {
	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for _, item := range items {
		item := item
		group.Go(func() error {
			return action(ctx, item)
		})
	}

	return group.Wait()
}

// ParallelMap applies mapFn to each item concurrently, preserving order.
// The workers parameter bounds the number of goroutines.
func ParallelMap[T any, R any](ctx context.Context, items []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for idx, item := range items {
		idx, item := idx, item
		group.Go(func() error {
			r, err := mapFn(ctx, item)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
