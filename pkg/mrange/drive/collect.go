package drive

import (
	"context"

	"github.com/ib-77/mrange/pkg/mrange"
)

// Collect drains every slot of r into its own slice, in production order.
func Collect[T any](ctx context.Context, r mrange.MultiRange[T]) ([][]T, error) {
	out := make([][]T, r.Slots())
	consumers := make([]Consumer[T], r.Slots())
	for slot := range consumers {
		slot := slot
		out[slot] = []T{}
		consumers[slot] = func(_ context.Context, v T) {
			out[slot] = append(out[slot], v)
		}
	}

	if err := New(r, consumers...).Run(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
