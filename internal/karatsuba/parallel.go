package karatsuba

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// taskSemaphore bounds the number of sub-products running on their own
// goroutine across the whole process.
var taskSemaphore = sync.OnceValue(func() *semaphore.Weighted {
	return semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
})

// executeParallel3 runs the three sub-product tasks concurrently and returns
// the first error. A task that cannot get a semaphore slot runs inline on
// the calling goroutine, so nested levels never block waiting for slots.
func executeParallel3(ctx context.Context, f1, f2, f3 func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	sem := taskSemaphore()

	var inlineErr error
	for _, f := range [...]func(context.Context) error{f1, f2, f3} {
		if sem.TryAcquire(1) {
			g.Go(func() error {
				defer sem.Release(1)
				return f(gctx)
			})
			continue
		}
		if inlineErr == nil {
			inlineErr = f(gctx)
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return inlineErr
}
