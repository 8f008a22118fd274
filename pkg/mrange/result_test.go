package mrange

import "testing"

func TestReadyCarriesValue(t *testing.T) {
	t.Parallel()
	r := Ready(42)
	if !r.IsReady() || r.State() != StateReady || r.Value() != 42 {
		t.Fatalf("expected ready 42, got: state=%v, val=%v", r.State(), r.Value())
	}
}

func TestDeferAndExhaustCarryNoValue(t *testing.T) {
	t.Parallel()
	d := Defer[string]()
	if !d.IsDeferred() || d.Value() != "" {
		t.Fatalf("expected empty deferred, got: state=%v, val=%q", d.State(), d.Value())
	}
	e := Exhaust[string]()
	if !e.IsExhausted() || e.Value() != "" {
		t.Fatalf("expected empty exhausted, got: state=%v, val=%q", e.State(), e.Value())
	}
}

func TestOkIsReadyUnit(t *testing.T) {
	t.Parallel()
	if !Ok().IsReady() {
		t.Fatalf("Ok should be a ready result")
	}
}

func TestStateFromPreservesState(t *testing.T) {
	t.Parallel()
	if out := StateFrom[int, string](Defer[int]()); !out.IsDeferred() {
		t.Fatalf("expected deferred, got %v", out.State())
	}
	if out := StateFrom[int, string](Exhaust[int]()); !out.IsExhausted() {
		t.Fatalf("expected exhausted, got %v", out.State())
	}
}

func TestStateFromPanicsOnReady(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on ready input")
		}
	}()
	StateFrom[int, string](Ready(1))
}

func TestSlotStateString(t *testing.T) {
	t.Parallel()
	cases := map[SlotState]string{
		StateReady:     "ready",
		StateDeferred:  "deferred",
		StateExhausted: "exhausted",
		SlotState(9):   "invalid",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("state %d: expected %q, got %q", state, want, got)
		}
	}
}
