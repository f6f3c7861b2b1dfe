// Package parallel maps over lists with a bounded number of goroutines.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// NoLimit lets Map start one goroutine per item.
const NoLimit = -1

// Map maps list to []R using f, running at most workers calls of f
// at once. Pass NoLimit for no bound.
//
// f receives a context that is canceled as soon as any call of f
// returns an error or ctx is canceled. After that Map stops starting
// new calls, waits for the ones running to exit, and returns the first
// error (or the context error). Results are all or nothing: on error
// the returned slice is nil.
func Map[S ~[]T, T, R any](
	ctx context.Context, list S, f func(context.Context, int, T) (R, error), workers int,
) ([]R, error) {
	result := make([]R, len(list))

	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, v := range list {
		if egCtx.Err() != nil {
			break
		}

		i, v := i, v
		// blocks while workers calls are in flight
		eg.Go(func() error {
			r, err := f(egCtx, i, v)
			if err != nil {
				return err
			}
			result[i] = r
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// canceled before anything failed, some items were never started
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
