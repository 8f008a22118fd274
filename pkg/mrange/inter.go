package mrange

import "github.com/google/uuid"

// MultiRange is the sole boundary between layers of a composition: a fixed set
// of independently addressable output streams ("slots"), identified by index
// 0..Slots()-1, frozen at construction time.
//
// Peek and Advance must uphold the protocol invariants:
//   - repeated Peek calls with no intervening successful Advance return the
//     same state and, if ready, the same value;
//   - an Advance that returns deferred leaves observable state unchanged;
//   - once a slot reports exhausted it reports exhausted forever.
type MultiRange[T any] interface {
	// Slots returns the number of output slots.
	Slots() int
	// Peek reports the current front of the given slot without consuming it.
	Peek(slot int) SlotResult[T]
	// Advance requests that the given slot move past its current front.
	Advance(slot int) SlotResult[Unit]
}

// Identified is implemented by layers that carry a construction-time instance
// id, used to correlate log lines with pipelines.
type Identified interface {
	Id() uuid.UUID
}
