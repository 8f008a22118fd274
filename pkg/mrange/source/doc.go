// Package source provides leaf adapters that wrap independently-owned
// sequences as a multi-slot range with a 1:1 slot-to-sequence mapping.
//
// There is no sharing at this level: no slot ever reports deferred, and
// advancing one slot never affects another. Fan-out over a shared base is the
// business of the fanout package and the operators built on it.
//
// Constructors:
// - Of: one slot per backing slice
// - Ints: a single slot over a half-open integer interval
// - Pull: one slot per pull function, for generator-style sources
package source
