package result

// Result holds either a value or an error, never both. The zero value
// is Ok with the zero value of T; build values with Ok and Err.
type Result[T any] struct {
	val T
	err error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Err wraps a failure. Err(nil) is indistinguishable from Ok with a
// zero value; callers are expected to pass a non-nil error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool  { return r.err == nil }
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value returns the held value, or the zero value of T on error.
func (r Result[T]) Value() T { return r.val }

// Err returns the held error, nil when the result is Ok.
func (r Result[T]) Err() error { return r.err }

// Get unpacks the result into Go's usual (value, error) pair.
func (r Result[T]) Get() (T, error) { return r.val, r.err }

// ValueOr returns the value, or def on error.
func (r Result[T]) ValueOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.val
}

// Map applies fn to the value of an Ok result. On error fn is not
// invoked and the error is carried through unchanged.
func (r Result[T]) Map(fn func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return Ok(fn(r.val))
}

// AndThen chains a fallible step. On error fn is not invoked; the
// chain short-circuits with the first error.
func (r Result[T]) AndThen(fn func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return fn(r.val)
}

// Match invokes exactly one of the two callbacks.
func (r Result[T]) Match(okFn func(T), errFn func(error)) {
	if r.err != nil {
		errFn(r.err)
		return
	}
	okFn(r.val)
}

// Map is the type-changing form of Result.Map. Methods cannot
// introduce type parameters, so cross-type chains go through the
// package-level functions.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.val))
}

// AndThen is the type-changing form of Result.AndThen.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return fn(r.val)
}

// From converts Go's (value, error) convention into a Result.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}
