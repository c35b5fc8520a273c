package rail

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Source loads plain values into ok freights until the slice is exhausted
// or the context is done, then closes the channel.
func Source[T, E any](ctx context.Context, values []T) <-chan Freight[T, E] {
	in := make(chan Freight[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- LoadValue[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// SourceResults loads prebuilt results into freights.
func SourceResults[T, E any](ctx context.Context, results []outcome.Result[T, E]) <-chan Freight[T, E] {
	in := make(chan Freight[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, r := range results {
			select {
			case in <- Load(r):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Drain collects everything the channel emits until it closes or the
// context is done.
func Drain[V any](ctx context.Context, out <-chan V) []V {
	res := make([]V, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				res = append(res, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}

// FirstOrDefault returns the first emitted value, or defaultV when the
// channel closes empty or the context is done first.
func FirstOrDefault[V any](ctx context.Context, out <-chan V, defaultV V) V {
	res := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case v, ok := <-out:
			if !ok {
				return
			}
			res = v
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return res
}
