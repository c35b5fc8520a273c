// Package rail lifts Result values onto channels for concurrent
// success/failure pipelines. Values travel wrapped in a Freight envelope
// that carries an id, a creation timestamp and the halt state a cancelled
// pipeline leaves behind; the pure containers stay free of that bookkeeping.
//
// Common usage:
// - Source/SourceResults: feed values or results into a pipeline
// - Check/Switch/MapStage/Tee/Try: build stages from plain functions
// - Run/Turnout: drive a stage with a fixed number of workers
// - RunWith/TurnoutWith: the same with halt hooks and delivery callbacks
// - Finally: collapse freights into final values via handlers
// - Drain/FirstOrDefault: collect pipeline output
// - Gather: run a bounded batch of tasks into an ordered result slice
//
// Worker counts and the drain-on-halt policy travel on the context via
// WithWorkers and WithDrainRemaining.
package rail
