package async

import (
	"context"
)

// Future represents the eventual result of a computation running in its own
// goroutine. The zero value is not usable; obtain one from Go.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Go starts fn in a new goroutine and returns a Future for its result.
// The context is passed through to fn unchanged; cancelling it only has an
// effect if fn observes it.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.result, f.err = fn(ctx)
	}()
	return f
}

// Await blocks until the computation completes and returns its result.
// Safe to call from multiple goroutines; all callers receive the same values.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to be cancelled, whichever
// comes first. Cancellation abandons the wait, not the computation: other
// waiters still receive the eventual result.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done reports whether the computation has completed, without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
