package combine

import (
	"github.com/google/uuid"

	"github.com/ib-77/mrange/pkg/mrange"
)

// ChainRange concatenates several equally-shaped ranges slot-wise: slot i
// yields the elements of slot i of each sub-range in turn.
type ChainRange[T any] struct {
	id     uuid.UUID
	ranges []mrange.MultiRange[T]
	cursor []int
	slots  int
}

// Chain builds the slot-wise concatenation of the given ranges. Every range
// must expose the same slot count; panics otherwise, or when none is given.
func Chain[T any](ranges ...mrange.MultiRange[T]) *ChainRange[T] {
	slots := mrange.CheckShape(ranges...)

	return &ChainRange[T]{
		id:     uuid.New(),
		ranges: ranges,
		cursor: make([]int, slots),
		slots:  slots,
	}
}

func (r *ChainRange[T]) Id() uuid.UUID {
	return r.id
}

func (r *ChainRange[T]) Slots() int {
	return r.slots
}

func (r *ChainRange[T]) Peek(slot int) mrange.SlotResult[T] {
	mrange.CheckSlot(slot, r.slots)

	for r.cursor[slot] < len(r.ranges) {
		res := r.ranges[r.cursor[slot]].Peek(slot)
		if !res.IsExhausted() {
			return res
		}
		r.cursor[slot]++
	}
	return mrange.Exhaust[T]()
}

func (r *ChainRange[T]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	mrange.CheckSlot(slot, r.slots)

	for r.cursor[slot] < len(r.ranges) {
		res := r.ranges[r.cursor[slot]].Advance(slot)
		if !res.IsExhausted() {
			return res
		}
		r.cursor[slot]++
	}
	return mrange.Exhaust[mrange.Unit]()
}
