package taskpool

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the pool to report queueing and
// execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncExecuted increments the executed tasks counter.
	IncExecuted()

	// IncFailed increments the failed tasks counter. A task counts as
	// failed when its final attempt returns an error or panics, or
	// when it is discarded at shutdown.
	IncFailed()

	// IncQueued increments the queued tasks counter.
	IncQueued()

	// BatchDecQueued decrements the queued counter by n.
	BatchDecQueued(n int64)
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	// executed is the total number of tasks processed.
	executed atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	// failed is the total number of tasks whose final attempt failed.
	failed atomic.Uint64

	_ [56]byte

	// queued is the current number of tasks enqueued.
	queued atomic.Int64
}

// Executed returns the total number of executed tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Failed returns the total number of failed tasks.
func (m *AtomicMetrics) Failed() uint64 {
	return m.failed.Load()
}

// Queued returns the current number of queued tasks.
// Intended for cold-path observation.
func (m *AtomicMetrics) Queued() int64 {
	return m.queued.Load()
}

func (m *AtomicMetrics) IncExecuted() {
	m.executed.Add(1)
}

func (m *AtomicMetrics) IncFailed() {
	m.failed.Add(1)
}

func (m *AtomicMetrics) IncQueued() {
	m.queued.Add(1)
}

func (m *AtomicMetrics) BatchDecQueued(n int64) {
	m.queued.Add(-n)
}

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncExecuted()           {}
func (m *NoopMetrics) IncFailed()             {}
func (m *NoopMetrics) IncQueued()             {}
func (m *NoopMetrics) BatchDecQueued(n int64) {}
