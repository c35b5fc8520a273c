package outcome

import "fmt"

// Result holds the outcome of an operation that can either succeed with a
// value of type T or fail with an error value of type E. Exactly one of the
// two slots is populated; the inactive slot keeps its zero value. Result is
// an immutable value: every transforming operation returns a new Result.
//
// The zero value of Result is an Err carrying E's zero value.
type Result[T, E any] struct {
	val T
	err E
	ok  bool
}

// Ok returns a Result holding the success value v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{val: v, ok: true}
}

// Err returns a Result holding the error value e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// From converts Go's conventional (value, error) pair into a Result.
// A nil error yields Ok(v), any other error yields Err(err).
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds an error value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value. It panics with the wrapped error value
// itself when called on an Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(r.err)
	}
	return r.val
}

// UnwrapOr returns the success value, or def when the Result is an Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.val
}

// UnwrapOrElse returns the success value, or the value computed by fallback
// from the wrapped error. fallback is invoked synchronously, at most once.
func (r Result[T, E]) UnwrapOrElse(fallback func(E) T) T {
	if !r.ok {
		return fallback(r.err)
	}
	return r.val
}

// Expect returns the success value. It panics with msg when called on an
// Err; msg replaces the wrapped error, it does not wrap it.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(msg)
	}
	return r.val
}

// UnwrapErr returns the error value. It panics when called on an Ok,
// including the success value in the panic message.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(fmt.Sprintf("called UnwrapErr on an Ok value: %v", r.val))
	}
	return r.err
}

// ExpectErr returns the error value. It panics with msg when called on
// an Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(msg)
	}
	return r.err
}

// Unpack destructures the Result into its two slots. Exactly one of the
// returned values is populated; the other is the zero value of its type.
func (r Result[T, E]) Unpack() (T, E) {
	return r.val, r.err
}

// Ok converts the Result to an Option over the success channel: Some(v)
// for an Ok, None for an Err. Error detail is discarded.
func (r Result[T, E]) Ok() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Some(r.val)
}

// Err converts the Result to an Option over the error channel: Some(e)
// for an Err, None for an Ok. The success value is discarded.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// AndThen composes r with fn, which itself returns a Result. On Ok the
// chain continues with fn(v); on Err the original error value is forwarded
// unchanged and fn is never invoked.
func AndThen[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return fn(r.val)
}

// Map transforms the success value with fn, leaving the error channel
// untouched: an Err passes through with its original error value and fn is
// never invoked.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.val))
}

// Match collapses the Result to a single value of type U by dispatching to
// exactly one of the two handlers. Both handlers are required; each is
// invoked synchronously, at most once.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}
