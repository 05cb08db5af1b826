package testable

import (
	"errors"
	"testing"

	"github.com/nomagicln/propcheck/arbitrary"
	"github.com/nomagicln/propcheck/rand"
)

func sizedGen(size int) *rand.Source {
	g := rand.New(1)
	g.SetSize(size)
	return g
}

func TestBoolTestable(t *testing.T) {
	if got := Bool(true).Result(sizedGen(10)).Status; got != Passed {
		t.Errorf("Bool(true) should Pass, got %v", got)
	}
	if got := Bool(false).Result(sizedGen(10)).Status; got != Failed {
		t.Errorf("Bool(false) should Fail, got %v", got)
	}
}

func TestOutcomeTestablePassesThrough(t *testing.T) {
	o := Discard()
	if got := FromOutcome(o).Result(sizedGen(10)); got.Status != Discarded {
		t.Errorf("expected Discarded passthrough, got %v", got.Status)
	}
}

func TestFunc1CapturesWitnessOnFailure(t *testing.T) {
	arb := arbitrary.Uint32()
	tst := Func1(arb, func(n uint32) Testable {
		return Bool(n == 0)
	})
	out := tst.Result(sizedGen(20))
	if out.Status != Passed && out.Status != Failed {
		t.Fatalf("unexpected status %v", out.Status)
	}
	if out.Status == Failed && len(out.Witness) != 1 {
		t.Errorf("expected single-argument witness, got %v", out.Witness)
	}
}

func TestFunc1PanicBecomesFailure(t *testing.T) {
	arb := arbitrary.Uint32()
	tst := Func1(arb, func(n uint32) Testable {
		panic("boom")
	})
	out := tst.Result(sizedGen(20))
	if out.Status != Failed {
		t.Fatalf("expected Failed from panic, got %v", out.Status)
	}
	if out.Err == nil || out.Err.Error() != "boom" {
		t.Errorf("expected captured panic message 'boom', got %v", out.Err)
	}
	if len(out.Witness) != 1 {
		t.Errorf("expected witness to still be attached, got %v", out.Witness)
	}
}

func TestFunc1DiscardsPropagate(t *testing.T) {
	arb := arbitrary.Uint32()
	tst := Func1(arb, func(n uint32) Testable {
		return FromOutcome(Discard())
	})
	out := tst.Result(sizedGen(20))
	if out.Status != Discarded {
		t.Errorf("expected Discarded to propagate, got %v", out.Status)
	}
}

func TestFunc1ShrunkVariantsEmptyUntilBound(t *testing.T) {
	arb := arbitrary.Uint32()
	tst := Func1(arb, func(n uint32) Testable { return Bool(n == 0) })
	count := 0
	for range tst.ShrunkVariants() {
		count++
	}
	if count != 0 {
		t.Errorf("expected no shrink variants before Result has bound an argument, got %d", count)
	}
}

func TestFunc1ShrunkVariantsAfterBindingUseArgShrink(t *testing.T) {
	arb := arbitrary.Uint32()
	tst := Func1(arb, func(n uint32) Testable { return Bool(n == 0) })
	// Force a specific failing bind by wrapping a deterministic generator
	// is unnecessary here: we only need *some* bound value, any will do.
	_ = tst.Result(sizedGen(50))
	bound := tst.(*funcTestable[uint32]).arg
	want := len(collectSeq(arb.Shrink(bound)))
	got := 0
	for variant := range tst.ShrunkVariants() {
		if variant == nil {
			t.Fatal("nil shrink variant")
		}
		got++
	}
	if got != want {
		t.Errorf("expected one shrink variant per shrink of the bound argument %d (%d), got %d", bound, want, got)
	}
}

func collectSeq[T any](seq func(func(T) bool)) []T {
	var out []T
	seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestFunc2WitnessHasTwoEntries(t *testing.T) {
	tst := Func2(arbitrary.Uint32(), arbitrary.Bool(), func(n uint32, b bool) Testable {
		return Bool(false)
	})
	out := tst.Result(sizedGen(10))
	if out.Status != Failed || len(out.Witness) != 2 {
		t.Fatalf("expected one witness entry per argument, got %v", out.Witness)
	}
}

func TestFunc1NoShrinkNeverShrinks(t *testing.T) {
	tst := Func1NoShrink(arbitrary.Uint32(), func(n uint32) Testable { return Bool(false) })
	_ = tst.Result(sizedGen(20))
	count := 0
	for range tst.ShrunkVariants() {
		count++
	}
	if count != 0 {
		t.Errorf("Func1NoShrink should never produce shrink variants, got %d", count)
	}
}

func TestNullaryPanicCapture(t *testing.T) {
	tst := Nullary(func() Testable {
		panic(errors.New("kaboom"))
	})
	out := tst.Result(sizedGen(10))
	if out.Status != Failed {
		t.Fatalf("expected Failed, got %v", out.Status)
	}
}
