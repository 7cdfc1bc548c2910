package taskpool

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolClosed is returned by submissions after Shutdown or Stop,
	// and resolves futures of tasks still queued when the pool closes.
	ErrPoolClosed = errors.New("taskpool: pool is closed")

	// ErrNilFunc is returned when a task is submitted without a body.
	ErrNilFunc = errors.New("taskpool: task func is nil")
)

// PanicError resolves the future of a task whose body panicked. It
// carries the recovered value and the goroutine stack at the point of
// the panic. A panicking task is never retried.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("taskpool: task panicked: %v", e.Value)
}
