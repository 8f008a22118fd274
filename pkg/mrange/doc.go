// Package mrange defines the vocabulary of the multi-slot range protocol:
// the tri-state SlotResult, the MultiRange capability, and the DependencyMap
// that groups dependent output slots by shared base slot.
//
// A MultiRange exposes several logically independent output streams ("slots")
// that may be derived from fewer underlying sources. A shared element is never
// copied aside for slots that lag behind; it stays the current front of the
// shared base until every dependent slot has acknowledged it. Coordination is
// expressed through the tri-state result:
// - ready: a value is available / the advance took effect
// - deferred: retry after servicing other slots
// - exhausted: permanently empty
//
// Operators live in the subpackages (source, fanout, mapper, filter, until,
// combine); package drive holds the round-robin consumption driver, which is
// the only protocol-safe way to fully drain a composition.
package mrange
