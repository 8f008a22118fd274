package combine

import (
	"github.com/google/uuid"

	"github.com/ib-77/mrange/pkg/mrange"
)

// TakeRange bounds the number of elements each slot of the wrapped range may
// produce.
type TakeRange[T any] struct {
	id     uuid.UUID
	base   mrange.MultiRange[T]
	bounds []int
	taken  []int
}

// Take wraps base so that slot i yields at most bounds[i] elements. Panics
// when the bound count does not match the base's slot count or a bound is
// negative.
func Take[T any](base mrange.MultiRange[T], bounds ...int) *TakeRange[T] {
	if len(bounds) != base.Slots() {
		panic("mrange: one bound per slot required")
	}
	for _, b := range bounds {
		if b < 0 {
			panic("mrange: negative take bound")
		}
	}

	return &TakeRange[T]{
		id:     uuid.New(),
		base:   base,
		bounds: append([]int(nil), bounds...),
		taken:  make([]int, base.Slots()),
	}
}

func (r *TakeRange[T]) Id() uuid.UUID {
	return r.id
}

func (r *TakeRange[T]) Slots() int {
	return r.base.Slots()
}

func (r *TakeRange[T]) Peek(slot int) mrange.SlotResult[T] {
	mrange.CheckSlot(slot, len(r.bounds))

	if r.taken[slot] >= r.bounds[slot] {
		return mrange.Exhaust[T]()
	}
	return r.base.Peek(slot)
}

func (r *TakeRange[T]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	mrange.CheckSlot(slot, len(r.bounds))

	if r.taken[slot] >= r.bounds[slot] {
		return mrange.Exhaust[mrange.Unit]()
	}

	res := r.base.Advance(slot)
	if res.IsReady() {
		r.taken[slot]++
	}
	return res
}
