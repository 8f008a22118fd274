// Package fanout implements the renumber/select layer: it projects a
// multi-slot range onto a new slot numbering, possibly pointing several output
// slots at the same base slot.
//
// This layer is the substrate every coordinated operator is built on, because
// it centralizes the unanimous-advancement bookkeeping: when N output slots
// read through one shared base slot, the base only advances once all N have
// individually requested advancement. Until then the shared element simply
// stays the current front of the base; it is never copied into a side buffer
// for slots that lag behind. A slot that has already requested advancement
// this round reports deferred until its siblings catch up.
package fanout
