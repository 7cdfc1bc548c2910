package taskpool

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// TaskFunc is the callable executed by a worker. Its value or error is
// delivered through the task's future.
type TaskFunc[R any] func(ctx context.Context) (R, error)

// Task is the full submission record.
//
// Fn is required. Ctx, if set, is passed to Fn and checked between
// retry attempts. Cleanup, if set, runs after the task finishes,
// including after a panic. Retry overrides the pool's default policy.
type Task[R any] struct {
	Fn       TaskFunc[R]
	Priority Priority
	Ctx      context.Context
	Cleanup  func()
	Retry    *RetryPolicy
}

// Submit enqueues fn and returns a future for its result.
// Submission never blocks on a full queue.
func Submit[R any](p *Pool, fn TaskFunc[R]) (*Future[R], error) {
	return SubmitTask(p, Task[R]{Fn: fn})
}

// SubmitPriority is Submit with an explicit priority level. The level
// only affects ordering when the pool uses a PriorityQueue.
func SubmitPriority[R any](p *Pool, prio Priority, fn TaskFunc[R]) (*Future[R], error) {
	return SubmitTask(p, Task[R]{Fn: fn, Priority: prio})
}

// SubmitCancelable enqueues fn with a private cancelable context. The
// returned handle's Cancel sets the stop signal; the body observes it
// through ctx.Done() and returns whatever value it chooses, through
// the success path.
func SubmitCancelable[R any](p *Pool, fn TaskFunc[R]) (*CancelableFuture[R], error) {
	ctx, cancel := context.WithCancel(context.Background())
	fut, err := SubmitTask(p, Task[R]{Fn: fn, Ctx: ctx})
	if err != nil {
		cancel()
		return nil, err
	}
	return &CancelableFuture[R]{Future: fut, cancel: cancel}, nil
}

// TrySubmit is the non-blocking form of SubmitTask. It reports false
// when the pool is closed or the submission buffer is full.
func TrySubmit[R any](p *Pool, job Task[R]) (*Future[R], bool) {
	t, fut, err := buildTask(p, job)
	if err != nil {
		return nil, false
	}
	if !p.tryEnqueue(t) {
		return nil, false
	}
	return fut, true
}

// SubmitTask enqueues a fully specified task.
func SubmitTask[R any](p *Pool, job Task[R]) (*Future[R], error) {
	t, fut, err := buildTask(p, job)
	if err != nil {
		return nil, err
	}
	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	return fut, nil
}

func buildTask[R any](p *Pool, job Task[R]) (*task, *Future[R], error) {
	if job.Fn == nil {
		return nil, nil, ErrNilFunc
	}
	if job.Ctx == nil {
		job.Ctx = context.Background()
	} else if err := job.Ctx.Err(); err != nil {
		return nil, nil, err
	}

	fut := newFuture[R]()
	t := &task{
		ctx:     job.Ctx,
		prio:    job.Priority,
		cleanup: job.Cleanup,
		run: func(ctx context.Context) error {
			return runWithRetry(p, job, fut, ctx)
		},
		fail: func(err error) {
			var zero R
			fut.complete(zero, err)
		},
	}
	return t, fut, nil
}

// runWithRetry drives the attempt loop for one task and resolves its
// future exactly once with the final outcome. Panics resolve the
// future immediately; only returned errors are retried.
func runWithRetry[R any](p *Pool, job Task[R], fut *Future[R], ctx context.Context) error {
	pol := p.resolveRetry(job.Retry)
	logger := lg.FromContext(ctx)

	var val R
	var err error

	bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())
	for attempt := 1; ; attempt++ {
		val, err = runAttempt(job.Fn, ctx)
		if err == nil {
			break
		}
		var pe *PanicError
		if errors.As(err, &pe) {
			logger.Error("task panicked", lg.Any("panic", pe.Value))
			break
		}
		if attempt == pol.Attempts {
			logger.Error("task failed", lg.Int("attempt", attempt), lg.Any("error", err))
			break
		}

		delay := bo.Next()
		logger.Warn("task attempt failed; backing off",
			lg.Int("attempt", attempt),
			lg.String("sleep", delay.String()),
			lg.Any("error", err),
		)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C // drain if timer fired
			}
			logger.Info("task canceled between attempts", lg.Any("reason", ctx.Err()))
			fut.complete(val, err)
			return err
		}
	}

	fut.complete(val, err)
	return err
}

// runAttempt is the task boundary: a panic inside the body becomes a
// *PanicError instead of escaping into the worker loop.
func runAttempt[R any](fn TaskFunc[R], ctx context.Context) (val R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn(ctx)
}
