package taskpool

import (
	"context"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
)

// Pool owns a fixed set of worker goroutines and a scheduler goroutine
// that feeds them from a task queue.
//
// The scheduler is the only goroutine touching the queue, so queue
// implementations stay lock-free. Workers receive tasks over an
// unbuffered channel; a dispatched-but-unclaimed task is handed back
// to the queue whenever a new submission arrives, so a higher-priority
// task can overtake it.
type Pool struct {
	opts Options

	submitCh chan *task
	workCh   chan *task
	stopCh   chan struct{} // signals no more submissions
	doneCh   chan struct{} // closed when the scheduler exits
	stopOnce sync.Once

	wg sync.WaitGroup // workers

	seq           atomic.Uint64
	activeWorkers atomic.Int32
	queuedLen     atomic.Int64

	mu      sync.Mutex
	cond    *sync.Cond
	pending int64 // accepted tasks not yet finished or discarded
}

// New creates a pool and starts its workers and scheduler.
func New(opts Options) *Pool {
	opts.FillDefaults()

	p := &Pool{
		opts:     opts,
		submitCh: make(chan *task, opts.Workers*2),
		workCh:   make(chan *task),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < opts.Workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.scheduler()
	return p
}

// scheduler is a dedicated goroutine that:
//   - moves submissions into the configured queue
//   - hands the queue's next task to whichever worker frees up first
//   - on shutdown, resolves still-queued futures with ErrPoolClosed
//
// next holds the task popped for dispatch. If a submission arrives
// while no worker is free, next goes back into the queue together with
// the new task and the pop is redone, so priority order is preserved.
func (p *Pool) scheduler() {
	q := p.makeQueue()
	var next *task

loop:
	for {
		if next == nil {
			next, _ = q.Pop()
		}

		if next != nil {
			select {
			case p.workCh <- next:
				p.dequeued()
				next = nil
			case t := <-p.submitCh:
				q.Requeue(next)
				q.Push(t)
				next = nil
			case <-p.stopCh:
				p.failTask(next, ErrPoolClosed)
				p.drain(q)
				close(p.workCh)
				break loop
			}
		} else {
			select {
			case t := <-p.submitCh:
				q.Push(t)
			case <-p.stopCh:
				p.drain(q)
				close(p.workCh)
				break loop
			}
		}
	}
	close(p.doneCh)
}

// drain empties the submit channel and the queue, resolving every
// pending future with ErrPoolClosed so no caller stays blocked in Wait.
func (p *Pool) drain(q taskQueue) {
	for {
		select {
		case t := <-p.submitCh:
			q.Push(t)
			continue
		default:
		}
		break
	}
	for {
		t, ok := q.Pop()
		if !ok {
			return
		}
		p.failTask(t, ErrPoolClosed)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	if p.opts.PinWorkers {
		runtime.LockOSThread()
		if err := PinToCPU(id % runtime.NumCPU()); err != nil {
			lg.FromContext(context.Background()).Warn("cpu pinning failed",
				lg.Int("worker", id), lg.Any("error", err))
		}
	}

	for t := range p.workCh {
		p.activeWorkers.Add(1)
		p.runTask(t)
		p.activeWorkers.Add(-1)
	}
}

// runTask executes one task. The task boundary in run captures panics
// into the future; the recover here is the last resort and keeps the
// worker alive no matter what. The cleanup hook runs behind its own
// recover, so accounting still happens when a hook panics.
func (p *Pool) runTask(t *task) {
	defer func() {
		p.runCleanup(t)
		p.opts.Metrics.IncExecuted()
		p.taskDone()
	}()
	defer func() {
		if r := recover(); r != nil {
			t.fail(&PanicError{Value: r, Stack: debug.Stack()})
			lg.FromContext(t.ctx).Error("task panicked", lg.Any("panic", r))
		}
	}()

	if err := t.run(t.ctx); err != nil {
		p.reportTaskError(err)
	}
}

// runCleanup invokes the task's cleanup hook with the same panic
// containment as the task body.
func (p *Pool) runCleanup(t *task) {
	if t.cleanup == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			lg.FromContext(t.ctx).Error("cleanup panicked", lg.Any("panic", r))
		}
	}()
	t.cleanup()
}

// failTask resolves a task that will never run.
func (p *Pool) failTask(t *task, err error) {
	t.fail(err)
	p.runCleanup(t)
	p.dequeued()
	p.reportTaskError(err)
	p.taskDone()
}

// enqueue hands a task to the scheduler. Accepted tasks are counted as
// pending until they finish or are discarded at shutdown.
//
// The pending count is raised before the closed check: a submitter
// that passed the check while the pool was open is then visible to
// the shutdown sweep, which drains the submit channel until the count
// reaches zero. Without that ordering a send racing Shutdown could be
// accepted and never read, leaving its future unresolved.
func (p *Pool) enqueue(t *task) error {
	p.taskStart()

	select {
	case <-p.stopCh:
		p.taskDone()
		return ErrPoolClosed
	default:
	}

	t.seq = p.seq.Add(1)

	select {
	case p.submitCh <- t:
		p.queuedLen.Add(1)
		p.opts.Metrics.IncQueued()
		lg.FromContext(t.ctx).Info("task submitted", lg.String("priority", t.prio.String()))
		return nil
	case <-p.stopCh:
		p.taskDone()
		return ErrPoolClosed
	}
}

// tryEnqueue is the non-blocking variant; it reports false when the
// submission buffer is full or the pool is closed. Same pending-first
// ordering as enqueue.
func (p *Pool) tryEnqueue(t *task) bool {
	p.taskStart()

	select {
	case <-p.stopCh:
		p.taskDone()
		return false
	default:
	}

	t.seq = p.seq.Add(1)

	select {
	case p.submitCh <- t:
		p.queuedLen.Add(1)
		p.opts.Metrics.IncQueued()
		return true
	default:
		p.taskDone()
		return false
	}
}

func (p *Pool) dequeued() {
	p.queuedLen.Add(-1)
	p.opts.Metrics.BatchDecQueued(1)
}

func (p *Pool) reportTaskError(err error) {
	p.opts.Metrics.IncFailed()
	if p.opts.OnTaskError != nil {
		p.opts.OnTaskError(err)
	}
}

func (p *Pool) pendingTasks() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

func (p *Pool) taskStart() {
	p.mu.Lock()
	p.pending++
	p.mu.Unlock()
}

func (p *Pool) taskDone() {
	p.mu.Lock()
	p.pending--
	if p.pending == 0 {
		p.cond.Broadcast()
	}
	p.mu.Unlock()
}

// WaitAll blocks until every accepted task has finished, including
// tasks still executing when the queue is observed empty. Tracking an
// accepted-task counter instead of queue length closes the race between
// "queue empty" and "task still running".
func (p *Pool) WaitAll() {
	p.mu.Lock()
	for p.pending > 0 {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// WaitAllCtx is like WaitAll but gives up when ctx is done.
func (p *Pool) WaitAllCtx(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.cond.Broadcast()
	})
	defer stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	for p.pending > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.cond.Wait()
	}
	return nil
}

// Shutdown stops intake, lets already-claimed tasks finish, resolves
// still-queued futures with ErrPoolClosed and joins every worker.
// It returns ctx.Err() if the workers do not finish in time; shutdown
// keeps completing in the background in that case.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stopCh) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-p.doneCh
		p.wg.Wait()
		// Sweep submissions that raced the close. A racing submitter
		// raises the pending count before it can send, so sweeping
		// until the count is zero catches a send that lands after the
		// channel was last observed empty.
		for {
			select {
			case t := <-p.submitCh:
				p.failTask(t, ErrPoolClosed)
			default:
				if p.pendingTasks() == 0 {
					return
				}
				runtime.Gosched()
			}
		}
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop is the blocking form of Shutdown.
func (p *Pool) Stop() { _ = p.Shutdown(context.Background()) }

// ActiveWorkers reports how many workers are executing a task right now.
func (p *Pool) ActiveWorkers() int32 { return p.activeWorkers.Load() }

// QueueLength reports how many accepted tasks have not yet been
// claimed by a worker.
func (p *Pool) QueueLength() int { return int(p.queuedLen.Load()) }
