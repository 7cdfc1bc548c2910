package taskpool

import "container/heap"

// prioQueue orders tasks by priority level, highest first. Ties are
// broken by the submission sequence number, so tasks within one level
// are dispatched strictly FIFO. Keying the heap on (level, sequence)
// keeps ordering deterministic and testable instead of depending on
// heap internals.
type prioQueue struct {
	pq taskHeap
}

func newPrioQueue(capacity int) *prioQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	q := &prioQueue{pq: make(taskHeap, 0, capacity)}
	heap.Init(&q.pq)
	return q
}

func (q *prioQueue) Push(t *task) {
	heap.Push(&q.pq, t)
}

// Requeue is a plain Push; the sequence number already fixes the
// task's position within its level.
func (q *prioQueue) Requeue(t *task) {
	heap.Push(&q.pq, t)
}

// Pop removes and returns the highest-priority task, FIFO within a level.
func (q *prioQueue) Pop() (*task, bool) {
	if q.pq.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&q.pq).(*task), true
}

func (q *prioQueue) Len() int { return q.pq.Len() }

// taskHeap is a max-heap on priority; ties resolve to the lowest seq.
type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio > h[j].prio
	}
	return h[i].seq < h[j].seq // same level: earlier submission first
}
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
