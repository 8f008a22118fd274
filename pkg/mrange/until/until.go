package until

import (
	"github.com/google/uuid"

	"github.com/ib-77/mrange/pkg/mrange"
)

// Range truncates each slot of the wrapped range at its own termination
// predicate, inclusively.
type Range[T any] struct {
	id    uuid.UUID
	base  mrange.MultiRange[T]
	preds []func(T) bool

	// done[i] is committed once slot i has advanced past its triggering
	// element; terminal, and strictly per slot.
	done []bool
}

// Wrap builds an until operator over base, one termination predicate per base
// slot. Panics when the predicate count does not match the base's slot count
// or a predicate is nil.
func Wrap[T any](base mrange.MultiRange[T], preds ...func(T) bool) *Range[T] {
	if len(preds) != base.Slots() {
		panic("mrange: one termination predicate per slot required")
	}
	for _, p := range preds {
		if p == nil {
			panic("mrange: nil termination predicate")
		}
	}

	return &Range[T]{
		id:    uuid.New(),
		base:  base,
		preds: preds,
		done:  make([]bool, base.Slots()),
	}
}

func (r *Range[T]) Id() uuid.UUID {
	return r.id
}

func (r *Range[T]) Slots() int {
	return r.base.Slots()
}

func (r *Range[T]) Peek(slot int) mrange.SlotResult[T] {
	mrange.CheckSlot(slot, len(r.preds))

	if r.done[slot] {
		return mrange.Exhaust[T]()
	}
	return r.base.Peek(slot)
}

func (r *Range[T]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	mrange.CheckSlot(slot, len(r.preds))

	if r.done[slot] {
		return mrange.Exhaust[mrange.Unit]()
	}

	// evaluate the front before moving past it: the flag is only committed on
	// a successful advance, so repeated peeks of the triggering element stay
	// stable and it is delivered exactly once
	front := r.base.Peek(slot)
	res := r.base.Advance(slot)
	if res.IsReady() && front.IsReady() && r.preds[slot](front.Value()) {
		r.done[slot] = true
	}
	return res
}
