// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous success/failure chains.
//
// It hides the per-step branching behind a small Chain[T, E] value so a
// pipeline reads top to bottom. Value-preserving steps are methods;
// type-changing steps are package functions because Go methods cannot
// introduce type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or a value
// - Then: switch to a new Result via a result-returning function
// - Try: call a function returning (U, error) and convert the error to a failure
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Or/And: pick between chains by first success or first failure
// - All: run checks against the value, joining collected errors
// - Finally: collapse the chain into a final value via handlers
package chain
