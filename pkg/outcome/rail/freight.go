package rail

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Freight is the envelope a pipeline moves around: the carried Result plus
// the bookkeeping the pure containers must not hold. A halted freight left
// the pipeline before its stage ran; its cause tells why.
type Freight[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	res       outcome.Result[T, E]
	halted    bool
	cause     error
}

func Load[T, E any](r outcome.Result[T, E]) Freight[T, E] {
	return Freight[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

func LoadValue[T, E any](v T) Freight[T, E] {
	return Load(outcome.Ok[T, E](v))
}

func LoadErr[T, E any](e E) Freight[T, E] {
	return Load(outcome.Err[T](e))
}

func Halt[T, E any](cause error) Freight[T, E] {
	return Freight[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		halted:    true,
		cause:     cause,
	}
}

// HaltFrom keeps the envelope's identity and cause across a stage type change.
func HaltFrom[In, Out, E any](f Freight[In, E]) Freight[Out, E] {
	return Freight[Out, E]{
		id:        f.id,
		createdAt: f.createdAt,
		halted:    true,
		cause:     f.cause,
	}
}

// reload swaps the carried result, keeping the envelope's identity.
func reload[In, Out, E any](f Freight[In, E], r outcome.Result[Out, E]) Freight[Out, E] {
	return Freight[Out, E]{
		id:        f.id,
		createdAt: f.createdAt,
		res:       r,
		halted:    f.halted,
		cause:     f.cause,
	}
}

func (f Freight[T, E]) ID() uuid.UUID {
	return f.id
}

func (f Freight[T, E]) CreatedAt() time.Time {
	return f.createdAt
}

func (f Freight[T, E]) Outcome() outcome.Result[T, E] {
	return f.res
}

func (f Freight[T, E]) IsHalted() bool {
	return f.halted
}

func (f Freight[T, E]) Cause() error {
	return f.cause
}
