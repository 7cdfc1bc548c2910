package taskpool

import (
	"testing"
)

func mkTask(prio Priority, seq uint64) *task {
	return &task{prio: prio, seq: seq}
}

func TestFifoQueueOrder(t *testing.T) {
	q := newFifoQueue(4)

	for i := uint64(0); i < 10; i++ {
		q.Push(mkTask(PriorityLow, i))
	}
	if q.Len() != 10 {
		t.Fatalf("len = %d; want 10", q.Len())
	}

	for i := uint64(0); i < 10; i++ {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if got.seq != i {
			t.Fatalf("pop %d: seq = %d", i, got.seq)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("pop on empty queue returned a task")
	}
}

// The ring must survive interleaved push/pop across the wrap point.
func TestFifoQueueWrapAndGrow(t *testing.T) {
	q := newFifoQueue(4)
	next := uint64(0)
	expect := uint64(0)

	for round := 0; round < 50; round++ {
		for i := 0; i < 3; i++ {
			q.Push(mkTask(PriorityLow, next))
			next++
		}
		for i := 0; i < 2; i++ {
			got, ok := q.Pop()
			if !ok {
				t.Fatalf("round %d: queue unexpectedly empty", round)
			}
			if got.seq != expect {
				t.Fatalf("round %d: seq = %d; want %d", round, got.seq, expect)
			}
			expect++
		}
	}

	for {
		got, ok := q.Pop()
		if !ok {
			break
		}
		if got.seq != expect {
			t.Fatalf("drain: seq = %d; want %d", got.seq, expect)
		}
		expect++
	}
	if expect != next {
		t.Fatalf("drained %d tasks; want %d", expect, next)
	}
}

// A requeued task must come out before anything pushed while it was
// held for dispatch.
func TestFifoQueueRequeue(t *testing.T) {
	q := newFifoQueue(4)

	q.Push(mkTask(PriorityLow, 0))
	held, _ := q.Pop()
	q.Push(mkTask(PriorityLow, 1))
	q.Requeue(held)

	got, _ := q.Pop()
	if got.seq != 0 {
		t.Fatalf("first pop seq = %d; want the requeued task", got.seq)
	}
	got, _ = q.Pop()
	if got.seq != 1 {
		t.Fatalf("second pop seq = %d; want 1", got.seq)
	}
}

func TestPrioQueueOrdering(t *testing.T) {
	q := newPrioQueue(8)

	q.Push(mkTask(PriorityLow, 1))
	q.Push(mkTask(PriorityHigh, 2))
	q.Push(mkTask(PriorityMedium, 3))
	q.Push(mkTask(PriorityCritical, 4))

	want := []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}
	for i, prio := range want {
		got, ok := q.Pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if got.prio != prio {
			t.Fatalf("pop %d: prio = %v; want %v", i, got.prio, prio)
		}
	}
}

// Within one level the queue is strictly FIFO on the sequence number,
// even after interleaved higher-priority traffic.
func TestPrioQueueFIFOTieBreak(t *testing.T) {
	q := newPrioQueue(8)

	for i := uint64(0); i < 5; i++ {
		q.Push(mkTask(PriorityMedium, i))
		q.Push(mkTask(PriorityCritical, 100+i))
	}

	for i := uint64(0); i < 5; i++ {
		got, _ := q.Pop()
		if got.prio != PriorityCritical || got.seq != 100+i {
			t.Fatalf("critical pop %d: (%v, %d)", i, got.prio, got.seq)
		}
	}
	for i := uint64(0); i < 5; i++ {
		got, _ := q.Pop()
		if got.prio != PriorityMedium || got.seq != i {
			t.Fatalf("medium pop %d: (%v, %d)", i, got.prio, got.seq)
		}
	}
}
