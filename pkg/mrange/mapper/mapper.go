package mapper

import (
	"github.com/google/uuid"

	"github.com/ib-77/mrange/pkg/mrange"
	"github.com/ib-77/mrange/pkg/mrange/fanout"
)

// Range maps each output slot of a fanned-out base through its own pure
// function.
type Range[In, Out any] struct {
	id  uuid.UUID
	fan *fanout.Range[In]
	fns []func(In) Out
}

// Wrap builds a map operator over base. Output slot i reads base slot
// baseOf[i] through fns[i]; repeats in baseOf fan the base slot out with
// consensus-gated advancement. Panics when the function count does not match
// the slot assignment or a function is nil.
func Wrap[In, Out any](base mrange.MultiRange[In], baseOf []int, fns ...func(In) Out) *Range[In, Out] {
	if len(fns) != len(baseOf) {
		panic("mrange: one map function per output slot required")
	}
	for _, fn := range fns {
		if fn == nil {
			panic("mrange: nil map function")
		}
	}

	return &Range[In, Out]{
		id:  uuid.New(),
		fan: fanout.Wrap(base, baseOf...),
		fns: fns,
	}
}

func (r *Range[In, Out]) Id() uuid.UUID {
	return r.id
}

func (r *Range[In, Out]) Slots() int {
	return r.fan.Slots()
}

func (r *Range[In, Out]) Peek(slot int) mrange.SlotResult[Out] {
	res := r.fan.Peek(slot)
	if !res.IsReady() {
		return mrange.StateFrom[In, Out](res)
	}
	return mrange.Ready(r.fns[slot](res.Value()))
}

func (r *Range[In, Out]) Advance(slot int) mrange.SlotResult[mrange.Unit] {
	return r.fan.Advance(slot)
}
