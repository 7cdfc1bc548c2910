package taskpool

// fifoQueue is a growable circular buffer holding tasks in strict
// submission order.
//
// It satisfies the taskQueue interface used by the scheduler.
// No priorities, no reordering. Submission must stay non-blocking, so
// the buffer doubles instead of rejecting when full.
type fifoQueue struct {
	buf        []*task // circular buffer
	head, tail int     // read/write indices
	size       int     // number of tasks currently buffered
}

func newFifoQueue(capacity int) *fifoQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &fifoQueue{buf: make([]*task, capacity)}
}

func (q *fifoQueue) Len() int { return q.size }

// Push inserts a task at the tail, growing the buffer when needed.
func (q *fifoQueue) Push(t *task) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = t
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	q.size++
}

// Requeue puts a popped task back at the head, ahead of everything
// pushed while it was held for dispatch.
func (q *fifoQueue) Requeue(t *task) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.head--
	if q.head < 0 {
		q.head = len(q.buf) - 1
	}
	q.buf[q.head] = t
	q.size++
}

// Pop removes and returns the oldest task.
//
// If the queue is empty, returns nil and false.
func (q *fifoQueue) Pop() (*task, bool) {
	if q.size == 0 {
		return nil, false
	}
	t := q.buf[q.head]
	q.buf[q.head] = nil
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.size--
	return t, true
}

// grow doubles the buffer, unwrapping the circular layout.
func (q *fifoQueue) grow() {
	next := make([]*task, len(q.buf)*2)
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
	q.tail = q.size
}
