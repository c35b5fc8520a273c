package outcome

// Option holds a value of type T that may be absent. The zero value of
// Option is None. Like Result it is an immutable value type.
type Option[T any] struct {
	val  T
	some bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the contained value. It panics with a fixed diagnostic
// when called on a None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("called Unwrap on an absent value")
	}
	return o.val
}

// UnwrapOr returns the contained value, or def when the Option is None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.val
}

// Expect returns the contained value. It panics with msg when called on
// a None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.val
}

// Get destructures the Option in Go's comma-ok style.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.some
}

// MatchOption collapses the Option to a single value of type U by
// dispatching to exactly one of the two handlers. The None handler
// receives no argument. Both handlers are required.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if o.some {
		return onSome(o.val)
	}
	return onNone()
}

// MapOption transforms the contained value with fn; a None passes through
// and fn is never invoked.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.val))
}

// AndThenOption composes o with fn, which itself returns an Option. On
// Some the chain continues with fn(v); a None passes through and fn is
// never invoked.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.val)
}

// OkOr converts the Option to a Result, substituting e as the error value
// when the Option is None.
func OkOr[T, E any](o Option[T], e E) Result[T, E] {
	if !o.some {
		return Err[T](e)
	}
	return Ok[T, E](o.val)
}
