// Package filter applies a per-slot predicate over a fanned-out base, with
// unanimous-rejection coordination between slots sharing a base slot.
//
// Slots sharing one base observe logically independent filtered views of the
// same underlying stream. An element a slot rejects is not discarded while any
// sibling might still want it: the rejecting slot reports deferred and the
// element stays the front of the shared base. Only once every dependent has
// decided — rejected it, or already consumed it and moved on — is the base
// advanced past it, and the rejecting slots retry against the next candidate.
// One slot's rejection therefore never costs a sibling an element it would
// have accepted.
package filter
