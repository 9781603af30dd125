// Package fanout runs a function over a slice of items with a fixed pool of
// workers and returns the results in input order. The seeder uses it to issue
// create calls concurrently without overwhelming the API.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines.
// Values of maxWorkers below one are treated as one.
//
// Items not yet picked up when ctx is canceled are recorded with ctx.Err()
// and fn is not called for them. An fn already running is expected to
// observe ctx itself.
//
// Run blocks until every item has a result. An empty input yields an empty
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(max(maxWorkers, 1), len(items))
	next := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for idx := range next {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)

	wg.Wait()
	return results
}
