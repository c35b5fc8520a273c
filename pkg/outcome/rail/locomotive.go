package rail

import (
	"context"
	"errors"
	"sync"
)

var ErrHalted = errors.New("pipeline halted")

// Hooks observe a locomotive shutting down. OnHalt sees the channels as the
// worker leaves, OnHaltPending sees a freight pulled but never processed,
// OnHaltProcessed sees a freight processed but never delivered.
type Hooks[In, Out, E any] struct {
	OnHalt          func(ctx context.Context, inputCh <-chan Freight[In, E], outCh chan<- Freight[Out, E])
	OnHaltPending   func(ctx context.Context, pending Freight[In, E], outCh chan<- Freight[Out, E])
	OnHaltProcessed func(ctx context.Context, in Freight[In, E], processed Freight[Out, E], outCh chan<- Freight[Out, E])
}

func locomotive[In, Out, E any](ctx context.Context, inputCh <-chan Freight[In, E], outCh chan<- Freight[Out, E],
	engine Stage[In, Out, E], hooks Hooks[In, Out, E],
	onDeliver func(ctx context.Context, out Freight[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if hooks.OnHalt != nil {
				hooks.OnHalt(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if hooks.OnHaltPending != nil {
					hooks.OnHaltPending(ctx, in, outCh)
				}
				if hooks.OnHalt != nil {
					hooks.OnHalt(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if hooks.OnHaltProcessed != nil {
						hooks.OnHaltProcessed(ctx, in, pr, outCh)
					}
					if hooks.OnHalt != nil {
						hooks.OnHalt(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onDeliver != nil {
						onDeliver(ctx, pr)
					}
				}
			}
		}
	}
}

func Run[T, E any](ctx context.Context, inputCh <-chan Freight[T, E],
	engine Stage[T, T, E], workers int) <-chan Freight[T, E] {
	return RunWith(ctx, inputCh, engine, Hooks[T, T, E]{}, nil, workers)
}

func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan Freight[In, E],
	engine Stage[In, Out, E], workers int) <-chan Freight[Out, E] {
	return TurnoutWith(ctx, inputCh, engine, Hooks[In, Out, E]{}, nil, workers)
}

func RunWith[T, E any](ctx context.Context, inputCh <-chan Freight[T, E],
	engine Stage[T, T, E], hooks Hooks[T, T, E],
	onDeliver func(ctx context.Context, out Freight[T, E]), workers int) <-chan Freight[T, E] {

	out := make(chan Freight[T, E])
	wg := &sync.WaitGroup{}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, hooks, onDeliver, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func TurnoutWith[In, Out, E any](ctx context.Context, inputCh <-chan Freight[In, E],
	engine Stage[In, Out, E], hooks Hooks[In, Out, E],
	onDeliver func(ctx context.Context, out Freight[Out, E]), workers int) <-chan Freight[Out, E] {

	out := make(chan Freight[Out, E])
	wg := &sync.WaitGroup{}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, hooks, onDeliver, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// HaltPending emits the pulled-but-unprocessed freight as halted when
// draining is enabled on the context.
func HaltPending[In, Out, E any](ctx context.Context, in Freight[In, E], outCh chan<- Freight[Out, E]) {
	if !DrainRemaining(ctx, true) {
		return
	}
	outCh <- haltPending[In, Out](ctx, in)
}

// DrainPending forwards every remaining input freight as halted when
// draining is enabled on the context. The input channel must have been
// closed by the source for this to terminate.
func DrainPending[In, Out, E any](ctx context.Context, inputCh <-chan Freight[In, E], outCh chan<- Freight[Out, E]) {
	if !DrainRemaining(ctx, true) {
		return
	}
	for in := range inputCh {
		outCh <- haltPending[In, Out](ctx, in)
	}
}

func haltPending[In, Out, E any](ctx context.Context, in Freight[In, E]) Freight[Out, E] {
	if in.halted {
		return HaltFrom[In, Out](in)
	}

	cause := context.Cause(ctx)
	if cause == nil {
		cause = ErrHalted
	}

	return Freight[Out, E]{
		id:        in.id,
		createdAt: in.createdAt,
		halted:    true,
		cause:     cause,
	}
}
