package rail

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Stage is the engine a locomotive drives: it receives one freight and
// emits the processed freight on the returned channel, or closes it
// without emitting when the context is done.
type Stage[In, Out, E any] func(ctx context.Context, f Freight[In, E]) <-chan Freight[Out, E]

func lift[In, Out, E any](op func(ctx context.Context, f Freight[In, E]) Freight[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, f Freight[In, E]) <-chan Freight[Out, E] {
		out := make(chan Freight[Out, E])

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}

			select {
			case out <- op(ctx, f):
			case <-ctx.Done():
			}
		}()

		return out
	}
}

// Check validates the carried value: a failing pred replaces the result
// with the error errOf builds from the value. Failed and halted freights
// pass through untouched.
func Check[T, E any](pred func(ctx context.Context, t T) bool, errOf func(t T) E) Stage[T, T, E] {
	return lift(func(ctx context.Context, f Freight[T, E]) Freight[T, E] {
		if f.halted || f.res.IsErr() {
			return f
		}
		if v := f.res.Unwrap(); !pred(ctx, v) {
			return reload(f, outcome.Err[T](errOf(v)))
		}
		return f
	})
}

// Switch binds a result-returning function over the carried value.
func Switch[In, Out, E any](fn func(ctx context.Context, in In) outcome.Result[Out, E]) Stage[In, Out, E] {
	return lift(func(ctx context.Context, f Freight[In, E]) Freight[Out, E] {
		if f.halted {
			return HaltFrom[In, Out](f)
		}
		return reload(f, outcome.AndThen(f.res, func(in In) outcome.Result[Out, E] {
			return fn(ctx, in)
		}))
	})
}

// MapStage transforms the carried value.
func MapStage[In, Out, E any](fn func(ctx context.Context, in In) Out) Stage[In, Out, E] {
	return lift(func(ctx context.Context, f Freight[In, E]) Freight[Out, E] {
		if f.halted {
			return HaltFrom[In, Out](f)
		}
		return reload(f, outcome.Map(f.res, func(in In) Out {
			return fn(ctx, in)
		}))
	})
}

// Tee runs the side effect for every freight that has not been halted and
// passes the freight through unchanged.
func Tee[T, E any](effect func(ctx context.Context, f Freight[T, E])) Stage[T, T, E] {
	return lift(func(ctx context.Context, f Freight[T, E]) Freight[T, E] {
		if !f.halted {
			effect(ctx, f)
		}
		return f
	})
}

// Try calls a function returning (Out, error) and turns a non-nil error
// into a failed freight.
func Try[In, Out any](fn func(ctx context.Context, in In) (Out, error)) Stage[In, Out, error] {
	return lift(func(ctx context.Context, f Freight[In, error]) Freight[Out, error] {
		if f.halted {
			return HaltFrom[In, Out](f)
		}
		if f.res.IsErr() {
			return reload(f, outcome.Err[Out](f.res.UnwrapErr()))
		}

		out, err := fn(ctx, f.res.Unwrap())
		if err != nil {
			return reload(f, outcome.Err[Out](err))
		}
		return reload(f, outcome.Ok[Out, error](out))
	})
}

// Handlers collapse a finished freight into a final value. OnOk and OnErr
// are required; with a nil OnHalt halted freights are dropped.
type Handlers[T, E, Out any] struct {
	OnOk   func(ctx context.Context, t T) Out
	OnErr  func(ctx context.Context, e E) Out
	OnHalt func(ctx context.Context, cause error) Out
}

// Finally reduces every incoming freight through the handlers and emits the
// outcomes until the input closes or the context is done.
func Finally[T, E, Out any](ctx context.Context, inputCh <-chan Freight[T, E], handlers Handlers[T, E, Out]) <-chan Out {
	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				var res Out
				if in.halted {
					if handlers.OnHalt == nil {
						continue
					}
					res = handlers.OnHalt(ctx, in.cause)
				} else {
					res = outcome.Match(in.res,
						func(t T) Out { return handlers.OnOk(ctx, t) },
						func(e E) Out { return handlers.OnErr(ctx, e) })
				}

				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
