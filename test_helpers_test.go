package taskpool_test

import (
	"runtime"
	"testing"
	"time"

	tp "github.com/Andrej220/go-utils/taskpool"
)

var queueTypes = []tp.QueueType{
	tp.FIFOQueue,
	tp.PriorityQueue,
}

func newTestPool(t *testing.T, workers int, qt tp.QueueType) *tp.Pool {
	t.Helper()

	p := tp.New(tp.Options{
		Workers: workers,
		QT:      qt,
	})
	t.Cleanup(p.Stop)
	return p
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}
