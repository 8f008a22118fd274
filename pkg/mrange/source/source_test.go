package source

import (
	"testing"
)

func TestOfIndependentSlots(t *testing.T) {
	t.Parallel()
	src := Of([]int{1, 2}, []int{10})

	if src.Slots() != 2 {
		t.Fatalf("expected 2 slots, got %d", src.Slots())
	}
	if r := src.Peek(0); !r.IsReady() || r.Value() != 1 {
		t.Fatalf("slot 0: expected ready 1, got state=%v val=%v", r.State(), r.Value())
	}
	if r := src.Peek(1); !r.IsReady() || r.Value() != 10 {
		t.Fatalf("slot 1: expected ready 10, got state=%v val=%v", r.State(), r.Value())
	}

	// draining slot 1 must not disturb slot 0
	if r := src.Advance(1); !r.IsReady() {
		t.Fatalf("advance slot 1: expected ready, got %v", r.State())
	}
	if r := src.Peek(1); !r.IsExhausted() {
		t.Fatalf("slot 1 should be exhausted, got %v", r.State())
	}
	if r := src.Peek(0); !r.IsReady() || r.Value() != 1 {
		t.Fatalf("slot 0 should still front 1, got state=%v val=%v", r.State(), r.Value())
	}
}

func TestOfPeekStability(t *testing.T) {
	t.Parallel()
	src := Of([]string{"a", "b"})
	for i := 0; i < 3; i++ {
		if r := src.Peek(0); !r.IsReady() || r.Value() != "a" {
			t.Fatalf("repeated peek must return the same value, got %v", r.Value())
		}
	}
}

func TestOfAdvancePastEnd(t *testing.T) {
	t.Parallel()
	src := Of([]int{7})
	src.Advance(0)
	if r := src.Advance(0); !r.IsExhausted() {
		t.Fatalf("expected exhausted, got %v", r.State())
	}
	if r := src.Peek(0); !r.IsExhausted() {
		t.Fatalf("exhaustion must be terminal, got %v", r.State())
	}
}

func TestIntsHalfOpen(t *testing.T) {
	t.Parallel()
	src := Ints(3, 6)
	var got []int
	for {
		r := src.Peek(0)
		if r.IsExhausted() {
			break
		}
		got = append(got, r.Value())
		src.Advance(0)
	}
	if len(got) != 3 || got[0] != 3 || got[2] != 5 {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
}

func TestIntsEmptyInterval(t *testing.T) {
	t.Parallel()
	src := Ints(5, 5)
	if r := src.Peek(0); !r.IsExhausted() {
		t.Fatalf("expected exhausted, got %v", r.State())
	}
}

func TestPullHoldsFrontBetweenPeeks(t *testing.T) {
	t.Parallel()
	n := 0
	src := Pull(func() (int, bool) {
		n++
		return n, n <= 2
	})

	if r := src.Peek(0); !r.IsReady() || r.Value() != 1 {
		t.Fatalf("expected ready 1, got state=%v val=%v", r.State(), r.Value())
	}
	if r := src.Peek(0); r.Value() != 1 {
		t.Fatalf("second peek must not re-pull, got %v", r.Value())
	}
	src.Advance(0)
	if r := src.Peek(0); !r.IsReady() || r.Value() != 2 {
		t.Fatalf("expected ready 2, got state=%v val=%v", r.State(), r.Value())
	}
	src.Advance(0)
	if r := src.Peek(0); !r.IsExhausted() {
		t.Fatalf("expected exhausted, got %v", r.State())
	}
}

func TestPullAdvanceWithoutPeek(t *testing.T) {
	t.Parallel()
	n := 0
	src := Pull(func() (int, bool) {
		n++
		return n, n <= 3
	})

	src.Advance(0) // skip 1 without peeking
	if r := src.Peek(0); !r.IsReady() || r.Value() != 2 {
		t.Fatalf("expected ready 2 after blind advance, got state=%v val=%v", r.State(), r.Value())
	}
}

func TestSourcePanicsOnBadSlot(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range slot")
		}
	}()
	Of([]int{1}).Peek(1)
}

func TestSourceIds(t *testing.T) {
	t.Parallel()
	a, b := Of([]int{1}), Ints(0, 1)
	if a.Id() == b.Id() {
		t.Fatalf("instances should carry distinct ids")
	}
}
