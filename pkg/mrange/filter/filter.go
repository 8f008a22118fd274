package filter

import (
	"github.com/google/uuid"

	"github.com/ib-77/mrange/pkg/mrange"
	"github.com/ib-77/mrange/pkg/mrange/fanout"
)

// Range filters each output slot of a fanned-out base through its own
// predicate, discarding a shared element only on unanimous rejection.
type Range[T any] struct {
	id    uuid.UUID
	fan   *fanout.Range[T]
	preds []func(T) bool

	// blocked[i] is set while output slot i has rejected the current element
	// of its shared base and is waiting for the siblings to decide.
	blocked []bool
}

// Wrap builds a filter operator over base. Output slot i reads base slot
// baseOf[i] and surfaces only elements accepted by preds[i]; repeats in baseOf
// fan the base slot out. Panics when the predicate count does not match the
// slot assignment or a predicate is nil.
func Wrap[T any](base mrange.MultiRange[T], baseOf []int, preds ...func(T) bool) *Range[T] {
	if len(preds) != len(baseOf) {
		panic("mrange: one predicate per output slot required")
	}
	for _, p := range preds {
		if p == nil {
			panic("mrange: nil predicate")
		}
	}

	return &Range[T]{
		id:      uuid.New(),
		fan:     fanout.Wrap(base, baseOf...),
		preds:   preds,
		blocked: make([]bool, len(baseOf)),
	}
}

func (r *Range[T]) Id() uuid.UUID {
	return r.id
}

func (r *Range[T]) Slots() int {
	return r.fan.Slots()
}

func (r *Range[T]) Peek(slot int) mrange.SlotResult[T] {
	mrange.CheckSlot(slot, r.fan.Slots())

	for {
		res := r.fan.Peek(slot)
		if !res.IsReady() {
			return res
		}
		if r.preds[slot](res.Value()) {
			return res
		}

		r.blocked[slot] = true

		deps := r.fan.Dependencies()
		group := deps.Group(deps.Base(slot))
		for _, sib := range group {
			if !r.blocked[sib] && !r.fan.Pending(sib) {
				// an undecided sibling may still want this element
				return mrange.Defer[T]()
			}
		}

		// unanimous: every sibling has rejected the element or consumed it
		// already. Complete the consensus for the rejecting slots so the base
		// discards it, then retry against the next candidate.
		if drop := r.discard(group); !drop.IsReady() {
			return mrange.StateFrom[mrange.Unit, T](drop)
		}
	}
}

func (r *Range[T]) discard(group []int) mrange.SlotResult[mrange.Unit] {
	for _, sib := range group {
		if !r.blocked[sib] {
			continue
		}
		res := r.fan.Advance(sib)
		if !res.IsReady() {
			// exhausted, or the base itself deferred; surviving blocked flags
			// keep the remaining siblings' consent pending for the next sweep
			return res
		}
		r.blocked[sib] = false
	}
	return mrange.Ok()
}

func (r *Range[T]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	mrange.CheckSlot(slot, r.fan.Slots())
	// a rejection-driven discard in Peek is a separate act from a reader's
	// advance; the fanout layer's pending flags keep the two from double
	// counting
	return r.fan.Advance(slot)
}
