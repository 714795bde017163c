package sliceutil

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

var ErrInvalidConcurrency = errors.New("invalid concurrency")

type MapperFn[I, O any] func(ctx context.Context, idx int, item I) (O, error)

// MapConcurrent applies mapper to every item of in using at most
// concurrency workers. The output preserves input order. The first
// mapper error cancels the remaining work and is returned; context
// cancellation aborts the same way.
func MapConcurrent[I, O any](
	baseCtx context.Context,
	in []I,
	concurrency int,
	mapper MapperFn[I, O],
) ([]O, error) {
	if concurrency < 1 {
		return nil, errors.Wrapf(ErrInvalidConcurrency, "should be at least 1, got %d", concurrency)
	}

	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	out := make([]O, len(in))
	jobs := make(chan int)

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case idx, ok := <-jobs:
					if !ok {
						return
					}
					result, err := mapper(ctx, idx, in[idx])
					if err != nil {
						fail(err)
						return
					}
					out[idx] = result
				case <-ctx.Done():
					return
				}
			}
		}()
	}

feed:
	for i := range in {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := baseCtx.Err(); err != nil {
		return nil, errors.Wrap(err, "concurrent map interrupted")
	}
	return out, nil
}
