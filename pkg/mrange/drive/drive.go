package drive

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/mrange/pkg/mrange"
)

// ErrStalled is returned when a full sweep over every active slot makes no
// progress. With single-threaded pull evaluation the next sweep would be
// identical, so the composition can never drain; typically this means slots
// sharing a base were truncated or consumed out of protocol.
var ErrStalled = errors.New("mrange: no progress in a full sweep")

// ErrSweepBudget is returned when the sweep cap set via WithSweepOptions is
// exceeded before the composition drains.
var ErrSweepBudget = errors.New("mrange: sweep budget exceeded")

// Consumer receives one element of one slot.
type Consumer[T any] func(ctx context.Context, v T)

// Driver drains a composed multi-slot range with a round-robin sweep,
// resolving deferred outcomes by servicing sibling slots.
type Driver[T any] struct {
	id        uuid.UUID
	r         mrange.MultiRange[T]
	consumers []Consumer[T]
}

// New builds a driver over r with one consumer per slot. Panics when the
// consumer count does not match the slot count or a consumer is nil.
func New[T any](r mrange.MultiRange[T], consumers ...Consumer[T]) *Driver[T] {
	if len(consumers) != r.Slots() {
		panic("mrange: one consumer per slot required")
	}
	for _, c := range consumers {
		if c == nil {
			panic("mrange: nil consumer")
		}
	}

	return &Driver[T]{
		id:        uuid.New(),
		r:         r,
		consumers: consumers,
	}
}

func (d *Driver[T]) Id() uuid.UUID {
	return d.id
}

// Run sweeps all slots until every one of them is exhausted. The logger is
// taken from ctx (zerolog.Ctx); cancellation is honored between sweeps. A cap
// on the number of sweeps can be set with WithSweepOptions.
func (d *Driver[T]) Run(ctx context.Context) error {
	log := zerolog.Ctx(ctx)
	slots := d.r.Slots()
	maxSweeps := GetMaxSweeps(ctx, 0)

	log.Trace().Stringer("driver", d.id).Int("slots", slots).Msg("drain started")

	terminated := make([]bool, slots)
	remaining := slots
	sweep := 0

	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		sweep++
		if maxSweeps > 0 && sweep > maxSweeps {
			log.Debug().Stringer("driver", d.id).Int("sweeps", maxSweeps).Msg("sweep budget exceeded")
			return ErrSweepBudget
		}

		progress := false
		for slot := 0; slot < slots; slot++ {
			if terminated[slot] {
				continue
			}

			res := d.r.Peek(slot)
			switch {
			case res.IsExhausted():
				terminated[slot] = true
				remaining--
				progress = true
			case res.IsReady():
				d.consumers[slot](ctx, res.Value())
				adv := d.r.Advance(slot)
				if adv.IsExhausted() {
					terminated[slot] = true
					remaining--
				}
				if !adv.IsDeferred() {
					progress = true
				}
			}
			// deferred slots stay active; servicing the remaining slots is
			// what eventually unblocks them
		}

		log.Trace().Stringer("driver", d.id).Int("sweep", sweep).Int("active", remaining).Msg("sweep complete")

		if !progress && remaining > 0 {
			log.Debug().Stringer("driver", d.id).Int("sweep", sweep).Int("active", remaining).Msg("drain stalled")
			return ErrStalled
		}
	}

	log.Trace().Stringer("driver", d.id).Int("sweeps", sweep).Msg("drain complete")
	return nil
}
