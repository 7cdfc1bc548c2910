package taskpool

import (
	"context"
	"sync"
)

// Future holds the eventual result of a submitted task. It resolves
// exactly once; Wait may be called any number of times and from any
// goroutine after that.
type Future[R any] struct {
	done chan struct{}
	once sync.Once
	val  R
	err  error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// complete resolves the future. Later calls are no-ops.
func (f *Future[R]) complete(val R, err error) {
	f.once.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

// Wait blocks until the task finishes and returns its result.
func (f *Future[R]) Wait() (R, error) {
	<-f.done
	return f.val, f.err
}

// WaitCtx is Wait with a deadline: it returns ctx.Err() if ctx ends
// first. The task itself keeps running; only the wait is abandoned.
func (f *Future[R]) WaitCtx(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future resolves, for use in
// select statements.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// CancelableFuture couples a future with the cancel function of the
// task's private context.
type CancelableFuture[R any] struct {
	*Future[R]
	cancel context.CancelFunc
}

// Cancel requests cooperative cancellation. The task body observes it
// through ctx.Done(); a task that never checks runs to completion.
// Calling Cancel more than once, or after the task finished, is a
// no-op.
func (f *CancelableFuture[R]) Cancel() {
	f.cancel()
}
