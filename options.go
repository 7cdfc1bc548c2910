package taskpool

import (
	"runtime"
)

// QueueType defines the scheduling strategy used by the pool.
//
// The type is configured via Options.QT when creating a new Pool.
type QueueType int

const (
	// FIFOQueue dispatches tasks in strict submission order.
	FIFOQueue QueueType = iota

	// PriorityQueue dispatches the highest Priority level first,
	// FIFO within a level.
	PriorityQueue
)

const (
	DefaultQueueCapacity = 1024
)

// Options configure a Pool.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// Workers is the number of worker goroutines. Defaults to
	// runtime.GOMAXPROCS(0).
	Workers int

	// QT selects the queue ordering strategy.
	QT QueueType

	// QueueCapacity is the initial queue capacity. The queue grows
	// beyond it; submission never blocks on a full queue.
	QueueCapacity int

	// DefaultRetry applies to tasks that set no per-task policy.
	// The zero policy means a single attempt, no retries.
	DefaultRetry RetryPolicy

	// Metrics receives queueing and execution events.
	// Defaults to NoopMetrics.
	Metrics MetricsPolicy

	// OnTaskError, if set, is called with the final error of every
	// failed task, in addition to the error being delivered through
	// the task's future.
	OnTaskError func(error)

	// PinWorkers locks each worker to an OS thread and pins it to a
	// CPU core. Linux only; elsewhere workers are only thread-locked.
	PinWorkers bool
}

func (o *Options) FillDefaults() {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = DefaultQueueCapacity
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}

func (qt QueueType) String() string {
	switch qt {
	case FIFOQueue:
		return "FIFOQueue"
	case PriorityQueue:
		return "PriorityQueue"
	default:
		return "Unknown"
	}
}
