// Package until truncates each output slot of a range at the first element
// satisfying the slot's own termination predicate. The triggering element is
// still delivered; everything after it is reported exhausted. Truncation is
// strictly per slot: one slot ending early never shortens a sibling, even when
// both read through the same shared base.
package until
