package result

// Option holds a value that may be absent. The zero value is None.
type Option[T any] struct {
	val  T
	some bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.some }
func (o Option[T]) IsNone() bool { return !o.some }

// Get unpacks the option into Go's usual (value, ok) pair.
func (o Option[T]) Get() (T, bool) { return o.val, o.some }

// Value returns the held value, or the zero value of T when absent.
func (o Option[T]) Value() T { return o.val }

// ValueOr returns the value, or def when absent.
func (o Option[T]) ValueOr(def T) T {
	if !o.some {
		return def
	}
	return o.val
}

// Map applies fn to a present value. On None fn is not invoked.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(fn(o.val))
}

// Match invokes exactly one of the two callbacks.
func (o Option[T]) Match(someFn func(T), noneFn func()) {
	if !o.some {
		noneFn()
		return
	}
	someFn(o.val)
}

// MapOpt is the type-changing form of Option.Map.
func MapOpt[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.val))
}

// FromPtr wraps a possibly-nil pointer: nil becomes None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}
