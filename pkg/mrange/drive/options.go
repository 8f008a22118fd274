package drive

import "context"

type OptionKey string

const SweepOptionKey OptionKey = "sweep_options"

type SweepOptions struct {
	// MaxSweeps caps the number of full sweeps a Run may perform; 0 means no
	// cap.
	MaxSweeps int
}

func WithSweepOptions(ctx context.Context, maxSweeps int) context.Context {
	return context.WithValue(ctx, SweepOptionKey, SweepOptions{MaxSweeps: maxSweeps})
}

func GetMaxSweeps(ctx context.Context, defaultMaxSweeps int) int {
	options, ok := ctx.Value(SweepOptionKey).(SweepOptions)
	if ok {
		return options.MaxSweeps
	}
	return defaultMaxSweeps
}
