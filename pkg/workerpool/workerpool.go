// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Result is the outcome of processing a single item.
type Result[R any] struct {
	Value R
	Err   error
}

// Map runs process over items with at most workerCount calls in flight and
// returns one Result per item, in the order of items, whatever order the calls
// complete in. A failing item does not stop the others. Items that were not
// started before ctx is done carry ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))
	if workerCount < 1 {
		workerCount = 1
	}
	workerCount = min(workerCount, len(items))

	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					results[idx].Err = err
					continue
				}
				v, err := process(ctx, items[idx])
				results[idx] = Result[R]{Value: v, Err: err}
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}
