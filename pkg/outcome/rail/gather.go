package rail

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Gather runs every task concurrently, bounded by workers, and returns one
// result per task in task order. A task that never ran because the context
// was done gets Err(ctx.Err()).
func Gather[T any](ctx context.Context, workers int, tasks []func(ctx context.Context) (T, error)) []outcome.Result[T, error] {
	results := make([]outcome.Result[T, error], len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, task := range tasks {
		i, task := i, task // per-iteration copies for pre-1.22 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = outcome.Err[T](err)
				return nil
			}

			v, err := task(gctx)
			results[i] = outcome.From(v, err)
			return nil
		})
	}

	// task failures live in their slots, never in the group
	_ = g.Wait()
	return results
}
