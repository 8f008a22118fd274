package mrange

// DependencyMap groups the output slots of an operator by the base slot each
// one was declared against. It is built once, at construction, from the static
// slot assignment, and is used by any operator that can fan a base slot out to
// several dependents to detect when all of them have concurred.
type DependencyMap struct {
	baseOf []int
	bases  []int
	groups map[int][]int
}

// NewDependencyMap builds the grouping from baseOf, where baseOf[i] is the
// base slot that output slot i reads through. Declaration order is preserved
// within each group. Panics when baseOf is empty or contains a negative index.
func NewDependencyMap(baseOf []int) DependencyMap {
	if len(baseOf) == 0 {
		panic("mrange: dependency map needs at least one slot")
	}

	m := DependencyMap{
		baseOf: append([]int(nil), baseOf...),
		groups: make(map[int][]int, len(baseOf)),
	}

	for slot, base := range baseOf {
		if base < 0 {
			panic("mrange: negative base slot index")
		}
		if _, seen := m.groups[base]; !seen {
			m.bases = append(m.bases, base)
		}
		m.groups[base] = append(m.groups[base], slot)
	}

	return m
}

// Slots returns the number of output slots covered by the map.
func (m DependencyMap) Slots() int {
	return len(m.baseOf)
}

// Base returns the base slot that output slot reads through.
func (m DependencyMap) Base(slot int) int {
	return m.baseOf[slot]
}

// Group returns the output slots derived from base, in declaration order.
// The returned slice is owned by the map and must not be modified.
func (m DependencyMap) Group(base int) []int {
	return m.groups[base]
}

// Bases returns the distinct base slots in first-declared order.
func (m DependencyMap) Bases() []int {
	return m.bases
}

// MaxBase returns the highest base slot index in the map.
func (m DependencyMap) MaxBase() int {
	max := 0
	for _, b := range m.bases {
		if b > max {
			max = b
		}
	}
	return max
}
