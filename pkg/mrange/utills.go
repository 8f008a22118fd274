package mrange

import "fmt"

// CheckSlot panics when slot is outside [0, slots). Slot identity is frozen at
// construction, so an out-of-range index is a programming error, not a state.
func CheckSlot(slot, slots int) {
	if slot < 0 || slot >= slots {
		panic(fmt.Sprintf("mrange: slot %d out of range [0,%d)", slot, slots))
	}
}

// CheckShape verifies that every range exposes the same slot count and returns
// it. Panics when no range is given or the counts differ, since structurally
// incompatible alternatives cannot stand in for one another.
func CheckShape[T any](ranges ...MultiRange[T]) int {
	if len(ranges) == 0 {
		panic("mrange: no ranges given")
	}

	slots := ranges[0].Slots()
	for _, r := range ranges[1:] {
		if r.Slots() != slots {
			panic(fmt.Sprintf("mrange: mismatched slot sets: %d vs %d", slots, r.Slots()))
		}
	}
	return slots
}
