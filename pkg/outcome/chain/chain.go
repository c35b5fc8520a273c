package chain

import (
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result to enable fluent chaining
type Chain[T, E any] struct {
	res outcome.Result[T, E]
}

// Start creates a new chain from an outcome.Result
func Start[T, E any](r outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) Chain[T, E] {
	return Start(outcome.Ok[T, E](value))
}

// Result returns the underlying outcome.Result
func (c Chain[T, E]) Result() outcome.Result[T, E] {
	return c.res
}

// Then composes functions that already return outcome.Result[T, E]
func (c Chain[T, E]) Then(onOk func(t T) outcome.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: onOk(c.res.Unwrap())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onOk func(t T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: outcome.Ok[T, E](onOk(c.res.Unwrap()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onOk func(t T), onErr func(e E)) Chain[T, E] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.UnwrapErr())
		}
		return c
	}

	if onOk != nil {
		onOk(c.res.Unwrap())
	}
	return c
}

// Or keeps the first successful chain; when neither succeeded the
// receiver's failure wins.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And keeps the first failed chain; when neither failed the required
// chain's result wins.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Then chains a function that switches the value type to U
func Then[T, E, U any](c Chain[T, E], onOk func(t T) outcome.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: outcome.AndThen(c.res, onOk)}
}

// Map chains a pure transformation to a new value type
func Map[T, E, U any](c Chain[T, E], onOk func(t T) U) Chain[U, E] {
	return Chain[U, E]{res: outcome.Map(c.res, onOk)}
}

// Finally collapses the chain into a final value via handlers
func Finally[T, E, U any](c Chain[T, E], onOk func(t T) U, onErr func(e E) U) U {
	return outcome.Match(c.res, onOk, onErr)
}

// Try chains a function that returns (U, error)
func Try[T, U any](c Chain[T, error], try func(t T) (U, error)) Chain[U, error] {
	if c.res.IsErr() {
		return Chain[U, error]{res: outcome.Err[U](c.res.UnwrapErr())}
	}

	u, err := try(c.res.Unwrap())
	if err != nil {
		return Chain[U, error]{res: outcome.Err[U](err)}
	}
	return Chain[U, error]{res: outcome.Ok[U, error](u)}
}

// All runs every check against the successful value and joins the collected
// errors into a single failure. With breakOnFirst set it stops at the first
// failing check instead.
func All[T any](c Chain[T, error], breakOnFirst bool, checks ...func(t T) error) Chain[T, error] {
	if c.res.IsErr() || len(checks) == 0 {
		return c
	}

	value := c.res.Unwrap()

	var errs []error
	for _, check := range checks {
		if err := check(value); err != nil {
			errs = append(errs, err)
			if breakOnFirst {
				break
			}
		}
	}

	if len(errs) > 0 {
		return Chain[T, error]{res: outcome.Err[T](errors.Join(errs...))}
	}
	return c
}
