package source

import (
	"github.com/google/uuid"

	"github.com/ib-77/mrange/pkg/mrange"
)

// Slices is a K-slot range over K backing slices, one slot per slice.
type Slices[T any] struct {
	id   uuid.UUID
	seqs [][]T
	pos  []int
}

// Of wraps the given slices as a multi-slot range. Slot i reads sequence i
// front to back. Panics when no sequence is given.
func Of[T any](seqs ...[]T) *Slices[T] {
	if len(seqs) == 0 {
		panic("mrange: source needs at least one sequence")
	}
	return &Slices[T]{
		id:   uuid.New(),
		seqs: seqs,
		pos:  make([]int, len(seqs)),
	}
}

func (s *Slices[T]) Id() uuid.UUID {
	return s.id
}

func (s *Slices[T]) Slots() int {
	return len(s.seqs)
}

func (s *Slices[T]) Peek(slot int) mrange.SlotResult[T] {
	mrange.CheckSlot(slot, len(s.seqs))

	if s.pos[slot] >= len(s.seqs[slot]) {
		return mrange.Exhaust[T]()
	}
	return mrange.Ready(s.seqs[slot][s.pos[slot]])
}

func (s *Slices[T]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	mrange.CheckSlot(slot, len(s.seqs))

	if s.pos[slot] >= len(s.seqs[slot]) {
		return mrange.Exhaust[mrange.Unit]()
	}
	s.pos[slot]++
	return mrange.Ok()
}

// Span is a single-slot range over the half-open interval [next, stop).
type Span struct {
	id   uuid.UUID
	next int
	stop int
}

// Ints returns a single-slot range producing lo, lo+1, ..., hi-1.
func Ints(lo, hi int) *Span {
	return &Span{
		id:   uuid.New(),
		next: lo,
		stop: hi,
	}
}

func (s *Span) Id() uuid.UUID {
	return s.id
}

func (s *Span) Slots() int {
	return 1
}

func (s *Span) Peek(slot int) mrange.SlotResult[int] {
	mrange.CheckSlot(slot, 1)

	if s.next >= s.stop {
		return mrange.Exhaust[int]()
	}
	return mrange.Ready(s.next)
}

func (s *Span) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	mrange.CheckSlot(slot, 1)

	if s.next >= s.stop {
		return mrange.Exhaust[mrange.Unit]()
	}
	s.next++
	return mrange.Ok()
}

// Funcs is a K-slot range over K pull functions. Each function is called to
// produce the next element for its slot; returning false ends the slot.
type Funcs[T any] struct {
	id    uuid.UUID
	fns   []func() (T, bool)
	front []T
	have  []bool
	done  []bool
}

// Pull wraps the given pull functions as a multi-slot range. A function is
// invoked at most once per element; the pulled front is held until the slot
// advances past it, so repeated peeks stay stable. Panics when no function is
// given.
func Pull[T any](fns ...func() (T, bool)) *Funcs[T] {
	if len(fns) == 0 {
		panic("mrange: source needs at least one pull function")
	}
	return &Funcs[T]{
		id:    uuid.New(),
		fns:   fns,
		front: make([]T, len(fns)),
		have:  make([]bool, len(fns)),
		done:  make([]bool, len(fns)),
	}
}

func (s *Funcs[T]) Id() uuid.UUID {
	return s.id
}

func (s *Funcs[T]) Slots() int {
	return len(s.fns)
}

func (s *Funcs[T]) pull(slot int) bool {
	v, ok := s.fns[slot]()
	if !ok {
		s.done[slot] = true
		return false
	}
	s.front[slot] = v
	s.have[slot] = true
	return true
}

func (s *Funcs[T]) Peek(slot int) mrange.SlotResult[T] {
	mrange.CheckSlot(slot, len(s.fns))

	if s.done[slot] {
		return mrange.Exhaust[T]()
	}
	if !s.have[slot] && !s.pull(slot) {
		return mrange.Exhaust[T]()
	}
	return mrange.Ready(s.front[slot])
}

func (s *Funcs[T]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	mrange.CheckSlot(slot, len(s.fns))

	if s.done[slot] {
		return mrange.Exhaust[mrange.Unit]()
	}
	if !s.have[slot] && !s.pull(slot) {
		return mrange.Exhaust[mrange.Unit]()
	}
	s.have[slot] = false
	return mrange.Ok()
}
