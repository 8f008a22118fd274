// Package mapper applies a pure per-slot transform on top of the fanout
// layer. Ready peeks are mapped through the slot's function; deferred and
// exhausted states, and all advances, pass straight through, so the operator
// adds no coordination beyond what fanout already provides.
package mapper
