package taskpool_test

import (
	"context"
	"testing"
	"time"

	tp "github.com/Andrej220/go-utils/taskpool"
)

// A canceled task observes the advisory signal within one polling
// interval and delivers its own sentinel through the success path.
func TestCancelableTask(t *testing.T) {
	t.Parallel()

	p := newTestPool(t, 2, tp.FIFOQueue)

	running := make(chan struct{})

	fut, err := tp.SubmitCancelable(p, func(ctx context.Context) (int, error) {
		close(running)
		for i := 0; i < 1000; i++ {
			select {
			case <-ctx.Done():
				return -1, nil
			case <-time.After(5 * time.Millisecond):
			}
		}
		return 1000, nil
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	<-running
	fut.Cancel()

	v, err := fut.Wait()
	if err != nil {
		t.Fatalf("cancellation must not be an error; got %v", err)
	}
	if v != -1 {
		t.Fatalf("result = %d; want the task's sentinel -1", v)
	}
}

// Cancel before the task is claimed: the body still runs and decides;
// an immediate poll returns the sentinel.
func TestCancelBeforeStart(t *testing.T) {
	t.Parallel()

	p := tp.New(tp.Options{Workers: 1})
	defer p.Stop()

	started := make(chan struct{})
	release := make(chan struct{})

	_, err := tp.Submit(p, func(context.Context) (int, error) {
		close(started)
		<-release
		return 0, nil
	})
	if err != nil {
		t.Fatalf("submit blocker failed: %v", err)
	}
	<-started

	fut, err := tp.SubmitCancelable(p, func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			return -1, nil
		default:
			return 1, nil
		}
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	fut.Cancel()
	fut.Cancel() // idempotent
	close(release)

	v, err := fut.Wait()
	if err != nil || v != -1 {
		t.Fatalf("result = (%d, %v); want (-1, nil)", v, err)
	}
}
