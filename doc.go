// Package taskpool provides a fixed-size worker pool with typed
// futures, priority scheduling and cooperative cancellation.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - A failure inside a task never terminates a worker
//   - Every accepted task resolves its future exactly once
//   - Deterministic, testable ordering within a priority level
//   - Submission never blocks the calling goroutine on a full queue
//
// Architecture overview
//
// The pool is composed of three loosely coupled layers:
//
//   1. Scheduling (taskQueue)
//      Responsible for ordering and dequeuing tasks. A FIFO ring
//      buffer and a (priority, sequence) heap are provided; either
//      can be swapped without modifying the pool or worker logic.
//
//   2. Execution (Pool / workers)
//      A single scheduler goroutine owns the queue and hands tasks
//      to long-lived workers over an unbuffered channel. A task held
//      for dispatch is returned to the queue when a new submission
//      arrives, so higher-priority work can overtake it.
//
//   3. Task lifecycle
//      Submit wraps a typed callable and its Future into type-erased
//      run/fail closures. The future is the single observer of the
//      outcome: a value, an error, a *PanicError, or ErrPoolClosed
//      when the pool shuts down with the task still queued.
//
// Error handling
//
// The pool distinguishes between two classes of failures:
//
//   - Task errors: returned by the body or produced by panic
//     recovery at the task boundary. They are delivered through the
//     future, optionally retried per RetryPolicy, and reported to
//     the OnTaskError hook. They are never logged-and-dropped.
//
//   - Cancellation: not an error. Cancel sets an advisory signal on
//     the task's context; the body polls it and returns a value of
//     its own choosing through the success path.
//
// Shutdown signals workers to stop pulling new work, lets any
// already-claimed task finish, and resolves the futures of tasks
// still queued with ErrPoolClosed so no caller deadlocks in Wait.
//
// Sum types
//
// The result subpackage provides Result[T] and Option[T] with
// map/and-then/match combinators for fallible computations that do
// not need a goroutine, matching the error vocabulary used by the
// pool's demos.
package taskpool
