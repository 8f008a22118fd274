package combine

import (
	"github.com/google/uuid"

	"github.com/ib-77/mrange/pkg/mrange"
)

// ChosenRange forwards every call to one alternative picked at construction.
// It owns all alternatives for its lifetime, chosen or not.
type ChosenRange[T any] struct {
	id     uuid.UUID
	ranges []mrange.MultiRange[T]
	chosen int
	slots  int
}

// Choose selects between two structurally compatible alternatives: a when
// useFirst is true, b otherwise. The selector is frozen for the instance's
// lifetime. Panics when the alternatives expose different slot sets.
func Choose[T any](useFirst bool, a, b mrange.MultiRange[T]) *ChosenRange[T] {
	if useFirst {
		return ChooseAmong(0, a, b)
	}
	return ChooseAmong(1, a, b)
}

// ChooseAmong selects ranges[index] from structurally compatible alternatives.
// Panics when the index is out of range or the slot sets differ.
func ChooseAmong[T any](index int, ranges ...mrange.MultiRange[T]) *ChosenRange[T] {
	slots := mrange.CheckShape(ranges...)
	if index < 0 || index >= len(ranges) {
		panic("mrange: chosen alternative out of range")
	}

	return &ChosenRange[T]{
		id:     uuid.New(),
		ranges: ranges,
		chosen: index,
		slots:  slots,
	}
}

func (r *ChosenRange[T]) Id() uuid.UUID {
	return r.id
}

func (r *ChosenRange[T]) Slots() int {
	return r.slots
}

func (r *ChosenRange[T]) Peek(slot int) mrange.SlotResult[T] {
	return r.ranges[r.chosen].Peek(slot)
}

func (r *ChosenRange[T]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	return r.ranges[r.chosen].Advance(slot)
}
