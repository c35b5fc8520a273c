// Package outcome provides two immutable container types that turn fallible
// and optional computations into first-class values: Result[T, E] for
// operations that succeed with a T or fail with an E, and Option[T] for
// values that may be absent.
//
// Both are closed two-variant unions with the variant fixed at construction.
// They carry no identity beyond their variant and payload, hold no external
// resources, and are safe to share across goroutines without synchronization.
//
// Key operations:
//   - Ok/Err, Some/None: construct a container from outside the package
//   - IsOk/IsErr, IsSome/IsNone: pure variant queries
//   - Unwrap/UnwrapOr/UnwrapOrElse/Expect: extract the success value; the
//     unwrap family panics on the wrong variant, the Or forms never do
//   - UnwrapErr/ExpectErr: extract the error value of a Result
//   - AndThen/Map/Match: compose and collapse without panicking; an Err or
//     None short-circuits and its payload travels unchanged
//   - Unpack/Get: destructure into Go's pair conventions
//   - Result.Ok/Result.Err, OkOr: convert between the two container kinds
//
// Packages chain and rail build fluent synchronous composition and
// channel-lifted concurrent pipelines on top of these types.
package outcome
