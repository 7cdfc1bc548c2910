package taskpool_test

import (
	"context"
	"errors"
	"testing"
	"time"

	tp "github.com/Andrej220/go-utils/taskpool"
)

func TestFutureWaitCtx(t *testing.T) {
	t.Parallel()

	p := newTestPool(t, 1, tp.FIFOQueue)

	release := make(chan struct{})
	defer close(release)

	fut, err := tp.Submit(p, func(context.Context) (int, error) {
		<-release
		return 9, nil
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := fut.WaitCtx(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded; got %v", err)
	}
}

func TestFutureDone(t *testing.T) {
	t.Parallel()

	p := newTestPool(t, 1, tp.FIFOQueue)

	fut, err := tp.Submit(p, func(context.Context) (string, error) {
		return "done", nil
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	select {
	case <-fut.Done():
	case <-time.After(time.Second):
		t.Fatal("future did not complete")
	}

	if v, err := fut.Wait(); err != nil || v != "done" {
		t.Fatalf("wait = (%q, %v); want (done, nil)", v, err)
	}
}

func TestTrySubmit(t *testing.T) {
	t.Parallel()

	p := tp.New(tp.Options{Workers: 1})

	fut, ok := tp.TrySubmit(p, tp.Task[int]{
		Fn: func(context.Context) (int, error) { return 3, nil },
	})
	if !ok {
		t.Fatal("try submit rejected on an idle pool")
	}
	if v, err := fut.Wait(); err != nil || v != 3 {
		t.Fatalf("wait = (%d, %v); want (3, nil)", v, err)
	}

	p.Stop()

	if _, ok := tp.TrySubmit(p, tp.Task[int]{
		Fn: func(context.Context) (int, error) { return 0, nil },
	}); ok {
		t.Fatal("try submit accepted on a closed pool")
	}
}
