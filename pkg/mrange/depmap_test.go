package mrange

import (
	"reflect"
	"testing"
)

func TestDependencyMapGroupsByBase(t *testing.T) {
	t.Parallel()
	m := NewDependencyMap([]int{0, 1, 0, 2, 0})

	if m.Slots() != 5 {
		t.Fatalf("expected 5 slots, got %d", m.Slots())
	}
	if got := m.Group(0); !reflect.DeepEqual(got, []int{0, 2, 4}) {
		t.Fatalf("group(0): expected [0 2 4], got %v", got)
	}
	if got := m.Group(1); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("group(1): expected [1], got %v", got)
	}
	if got := m.Group(2); !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("group(2): expected [3], got %v", got)
	}
}

func TestDependencyMapBasesFirstSeenOrder(t *testing.T) {
	t.Parallel()
	m := NewDependencyMap([]int{2, 0, 2, 1})
	if got := m.Bases(); !reflect.DeepEqual(got, []int{2, 0, 1}) {
		t.Fatalf("expected bases [2 0 1], got %v", got)
	}
	if m.MaxBase() != 2 {
		t.Fatalf("expected max base 2, got %d", m.MaxBase())
	}
}

func TestDependencyMapBaseLookup(t *testing.T) {
	t.Parallel()
	m := NewDependencyMap([]int{1, 1, 0})
	for slot, want := range []int{1, 1, 0} {
		if got := m.Base(slot); got != want {
			t.Fatalf("base(%d): expected %d, got %d", slot, want, got)
		}
	}
}

func TestDependencyMapPanicsOnEmptyAssignment(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty assignment")
		}
	}()
	NewDependencyMap(nil)
}

func TestDependencyMapPanicsOnNegativeBase(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on negative base")
		}
	}()
	NewDependencyMap([]int{0, -1})
}

func TestDependencyMapCopiesAssignment(t *testing.T) {
	t.Parallel()
	baseOf := []int{0, 0}
	m := NewDependencyMap(baseOf)
	baseOf[1] = 7
	if m.Base(1) != 0 {
		t.Fatalf("map must not alias the caller's slice")
	}
}
