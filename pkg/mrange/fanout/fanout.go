package fanout

import (
	"github.com/google/uuid"

	"github.com/ib-77/mrange/pkg/mrange"
)

// Range projects a base range onto a new slot numbering. Output slot i reads
// through base slot baseOf[i]; repeats in baseOf fan one base slot out to
// several dependents, whose advancement is consensus-gated.
type Range[T any] struct {
	id   uuid.UUID
	base mrange.MultiRange[T]
	deps mrange.DependencyMap

	// pending[i] is set while output slot i has requested advancement of its
	// shared base for the current element and the group has not yet concurred.
	pending []bool
	// exhausted[b] is set once base slot b has been observed empty; terminal.
	exhausted []bool
}

// Wrap builds the renumber layer. baseOf[i] names the base slot that output
// slot i reads through; the same base may appear any number of times. The base
// range is owned by the returned layer from here on. Panics when baseOf is
// empty or references a slot the base does not expose.
func Wrap[T any](base mrange.MultiRange[T], baseOf ...int) *Range[T] {
	deps := mrange.NewDependencyMap(baseOf)
	if deps.MaxBase() >= base.Slots() {
		panic("mrange: base slot selection out of range")
	}

	return &Range[T]{
		id:        uuid.New(),
		base:      base,
		deps:      deps,
		pending:   make([]bool, deps.Slots()),
		exhausted: make([]bool, base.Slots()),
	}
}

func (r *Range[T]) Id() uuid.UUID {
	return r.id
}

func (r *Range[T]) Slots() int {
	return r.deps.Slots()
}

// Dependencies returns the base-slot grouping of the output slots.
func (r *Range[T]) Dependencies() mrange.DependencyMap {
	return r.deps
}

// Pending reports whether slot has already requested advancement of its shared
// base for the current element.
func (r *Range[T]) Pending(slot int) bool {
	mrange.CheckSlot(slot, r.deps.Slots())
	return r.pending[slot]
}

func (r *Range[T]) Peek(slot int) mrange.SlotResult[T] {
	mrange.CheckSlot(slot, r.deps.Slots())

	b := r.deps.Base(slot)
	if r.exhausted[b] {
		return mrange.Exhaust[T]()
	}
	if r.pending[slot] {
		// this slot has moved past the current element; nothing new has been
		// negotiated with the siblings yet
		return mrange.Defer[T]()
	}

	res := r.base.Peek(b)
	if res.IsExhausted() {
		r.exhausted[b] = true
	}
	return res
}

func (r *Range[T]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	mrange.CheckSlot(slot, r.deps.Slots())

	b := r.deps.Base(slot)
	if r.exhausted[b] {
		return mrange.Exhaust[mrange.Unit]()
	}
	if r.pending[slot] {
		return mrange.Defer[mrange.Unit]()
	}

	// there must be a negotiated current element to move past
	front := r.base.Peek(b)
	if front.IsExhausted() {
		r.exhausted[b] = true
		return mrange.Exhaust[mrange.Unit]()
	}
	if front.IsDeferred() {
		return mrange.Defer[mrange.Unit]()
	}

	r.pending[slot] = true

	group := r.deps.Group(b)
	for _, sib := range group {
		if !r.pending[sib] {
			// recorded; the element stays the front of the base until every
			// sibling concurs
			return mrange.Ok()
		}
	}

	res := r.base.Advance(b)
	switch {
	case res.IsExhausted():
		r.exhausted[b] = true
		return mrange.Exhaust[mrange.Unit]()
	case res.IsDeferred():
		r.pending[slot] = false
		return mrange.Defer[mrange.Unit]()
	}

	for _, sib := range group {
		r.pending[sib] = false
	}
	return mrange.Ok()
}
