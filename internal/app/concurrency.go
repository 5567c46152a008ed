package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel2 executes two functions concurrently and returns both results
// or the first error. The sibling is canceled when either function fails.
func Parallel2[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (result1 T1, result2 T2, err error) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var fnErr error

		result1, fnErr = fn1(ctx)

		return fnErr
	})

	g.Go(func() error {
		var fnErr error

		result2, fnErr = fn2(ctx)

		return fnErr
	})

	err = g.Wait()
	if err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, fmt.Errorf("parallel execution failed: %w", err)
	}

	return result1, result2, nil
}

// ForEachLimit runs fn for every index in [0, n) with at most limit
// goroutines in flight. Unlike Parallel2, a failing item does not cancel
// its siblings; fn is expected to record per-item failures itself and
// return an error only for problems that should stop the whole batch.
func ForEachLimit(ctx context.Context, limit, n int, fn func(ctx context.Context, i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range n {
		g.Go(func() error {
			return fn(ctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch execution failed: %w", err)
	}

	return nil
}
