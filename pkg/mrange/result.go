package mrange

// SlotState is the tri-state outcome of a Peek or Advance call.
type SlotState uint8

const (
	// StateReady means a value is available (Peek) or the advance took effect.
	StateReady SlotState = iota
	// StateDeferred means more values exist but none can be produced or
	// consumed right now; retry after servicing other slots.
	StateDeferred
	// StateExhausted means the slot is permanently empty.
	StateExhausted
)

func (s SlotState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateDeferred:
		return "deferred"
	case StateExhausted:
		return "exhausted"
	}
	return "invalid"
}

// Unit is the payload of an Advance result, which carries no value.
type Unit struct{}

// SlotResult carries a SlotState and, only when ready, a payload value.
type SlotResult[T any] struct {
	state SlotState
	value T
}

func Ready[T any](v T) SlotResult[T] {
	return SlotResult[T]{
		state: StateReady,
		value: v,
	}
}

func Defer[T any]() SlotResult[T] {
	return SlotResult[T]{state: StateDeferred}
}

func Exhaust[T any]() SlotResult[T] {
	return SlotResult[T]{state: StateExhausted}
}

// Ok is the successful Advance result.
func Ok() SlotResult[Unit] {
	return Ready(Unit{})
}

// StateFrom carries a non-ready state across a type change. Panics when the
// input is ready, since a ready value cannot be retyped.
func StateFrom[In, Out any](from SlotResult[In]) SlotResult[Out] {
	if from.IsReady() {
		panic("mrange: StateFrom on a ready result")
	}
	return SlotResult[Out]{state: from.state}
}

func (r SlotResult[T]) State() SlotState {
	return r.state
}

// Value returns the payload. Zero value unless the result is ready.
func (r SlotResult[T]) Value() T {
	return r.value
}

func (r SlotResult[T]) IsReady() bool {
	return r.state == StateReady
}

func (r SlotResult[T]) IsDeferred() bool {
	return r.state == StateDeferred
}

func (r SlotResult[T]) IsExhausted() bool {
	return r.state == StateExhausted
}
