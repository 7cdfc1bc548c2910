package taskpool

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Map submits one task per input element, waits for all of them and
// returns the results in input order, regardless of completion order.
//
// Every element task runs with the caller's ctx; an already-canceled
// ctx fails all elements at submission.
//
// Element errors do not stop the remaining elements; they are combined
// into the returned error. out[i] is the zero value for every element
// that failed.
func Map[T, R any](ctx context.Context, p *Pool, in []T, fn func(ctx context.Context, v T) (R, error)) ([]R, error) {
	futs := make([]*Future[R], len(in))
	var errs error

	for i, v := range in {
		v := v
		fut, err := SubmitTask(p, Task[R]{
			Ctx: ctx,
			Fn: func(ctx context.Context) (R, error) {
				return fn(ctx, v)
			},
		})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("taskpool: map element %d: %w", i, err))
			continue
		}
		futs[i] = fut
	}

	out := make([]R, len(in))
	for i, fut := range futs {
		if fut == nil {
			continue
		}
		v, err := fut.Wait()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("taskpool: map element %d: %w", i, err))
			continue
		}
		out[i] = v
	}
	return out, errs
}
