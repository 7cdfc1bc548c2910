package taskpool

import (
	"time"
)

const (
	defaultInitialRetry = 200 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second
)

// RetryPolicy describes how many times and how often a task should be
// retried. Zero values are treated as "use pool defaults"; a policy
// with Attempts <= 1 runs the task exactly once.
//
// Retries apply to errors returned by the task body. A panic is never
// retried; it resolves the future with a *PanicError immediately.
type RetryPolicy struct {
	// Attempts is the maximum number of tries for a task.
	Attempts int

	// Initial is the first backoff duration.
	Initial time.Duration

	// Max is the cap for backoff duration.
	Max time.Duration
}

// resolveRetry merges a per-task policy over the pool default.
// Non-zero per-task values win.
func (p *Pool) resolveRetry(override *RetryPolicy) RetryPolicy {
	pol := p.opts.DefaultRetry
	if override != nil {
		if override.Attempts > 0 {
			pol.Attempts = override.Attempts
		}
		if override.Initial > 0 {
			pol.Initial = override.Initial
		}
		if override.Max > 0 {
			pol.Max = override.Max
		}
	}
	if pol.Attempts <= 0 {
		pol.Attempts = 1
	}
	if pol.Initial <= 0 {
		pol.Initial = defaultInitialRetry
	}
	if pol.Max <= 0 {
		pol.Max = defaultMaxRetry
	}
	return pol
}
