package async

import (
	"context"
	"sync"
)

// Memo memoizes a single computation with single-flight semantics: the first
// Get starts the computation, concurrent Gets share the in-flight result, and
// later Gets return the cached value. Errors are cached too; Reset discards
// the cached state so the next Get runs the computation again.
type Memo[T any] struct {
	fn func(context.Context) (T, error)

	mu       sync.Mutex
	inflight *Future[T]
}

// NewMemo creates a Memo around fn. The computation does not start until the
// first Get.
func NewMemo[T any](fn func(context.Context) (T, error)) *Memo[T] {
	return &Memo[T]{fn: fn}
}

// Get returns the memoized result, starting the computation if needed.
// The computation runs detached from the caller's context so that one
// cancelled waiter cannot poison the shared result; ctx only bounds how long
// this particular caller waits.
func (m *Memo[T]) Get(ctx context.Context) (T, error) {
	m.mu.Lock()
	f := m.inflight
	if f == nil {
		f = Go(context.WithoutCancel(ctx), m.fn)
		m.inflight = f
	}
	m.mu.Unlock()

	return f.AwaitContext(ctx)
}

// Reset discards the cached result and any reference to an in-flight
// computation. Waiters already blocked on the old computation still receive
// its result; the next Get starts fresh.
func (m *Memo[T]) Reset() {
	m.mu.Lock()
	m.inflight = nil
	m.mu.Unlock()
}

// Cached reports whether a completed result is currently memoized.
func (m *Memo[T]) Cached() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight != nil && m.inflight.Done()
}
