// Package combine holds the structural combinators: Take (per-slot element
// bound), Chain (slot-wise sequential concatenation of equally-shaped ranges)
// and Choose/ChooseAmong (construction-time selection between structurally
// compatible alternatives).
//
// None of these add coordination of their own; they reshape which upstream a
// slot reads from while forwarding the tri-state protocol untouched.
package combine
