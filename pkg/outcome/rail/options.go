package rail

import "context"

type optionKey string

const (
	workerOptionKey optionKey = "worker_options"
	drainOptionKey  optionKey = "drain_options"
)

type workerOptions struct {
	maxCount int
}

type drainOptions struct {
	drainRemaining bool
}

func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: maxWorkers})
}

func Workers(ctx context.Context, defaultWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok {
		return options.maxCount
	}
	return defaultWorkers
}

func WithDrainRemaining(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, drainOptionKey, drainOptions{drainRemaining: drain})
}

func DrainRemaining(ctx context.Context, defaultDrain bool) bool {
	options, ok := ctx.Value(drainOptionKey).(drainOptions)
	if ok {
		return options.drainRemaining
	}
	return defaultDrain
}
