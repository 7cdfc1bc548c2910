package taskpool

import (
	"context"
)

// task is the type-erased unit of work flowing through the scheduler.
//
// Submit wraps the typed callable and its future into the run and fail
// closures, so the queues and workers never deal with type parameters.
type task struct {
	// run executes the body (including any retry loop) and resolves
	// the future. It returns the final error for reporting.
	run func(ctx context.Context) error

	// fail resolves the future without running the body. Used when
	// the pool shuts down with the task still queued.
	fail func(err error)

	cleanup func()
	ctx     context.Context

	prio Priority

	// seq is a monotonic submission counter. It breaks priority ties
	// so ordering within a level is FIFO and deterministic.
	seq uint64

	// index is maintained by the heap-based priority queue.
	index int
}

// taskQueue defines the minimal interface required by the scheduler
// to store and select pending tasks.
//
// Implementations are used from the scheduler goroutine only, so they
// need no internal locking. The interface is intentionally small to
// allow different ordering strategies (FIFO, priority) to be swapped
// without affecting the pool logic.
type taskQueue interface {
	// Push inserts a newly submitted task into the queue.
	Push(t *task)

	// Requeue returns a previously popped task. The task keeps its
	// original position relative to everything already queued: FIFO
	// queues put it back at the front, the priority queue re-inserts
	// by (level, sequence).
	Requeue(t *task)

	// Pop retrieves and removes the next task to dispatch.
	//
	// It returns the selected task and a boolean flag indicating
	// whether a task was available. If false, the queue is empty.
	Pop() (*task, bool)

	// Len returns the current number of tasks waiting in the queue.
	Len() int
}

func (p *Pool) makeQueue() taskQueue {
	switch p.opts.QT {
	case PriorityQueue:
		return newPrioQueue(p.opts.QueueCapacity)
	default:
		return newFifoQueue(p.opts.QueueCapacity)
	}
}
