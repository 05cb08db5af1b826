package arbitrary

import "testing"

func TestResultShrinkDoesNotCrossVariant(t *testing.T) {
	r := ResultOf[uint32, string](Uint32(), String())
	for cand := range r.Shrink(Ok[uint32, string](5)) {
		if !cand.IsOk() {
			t.Fatalf("shrink(Ok(5)) crossed into Err: %+v", cand)
		}
	}
	for cand := range r.Shrink(Err[uint32, string]("abc")) {
		if cand.IsOk() {
			t.Fatalf("shrink(Err(\"abc\")) crossed into Ok: %+v", cand)
		}
	}
}

func TestResultShrinkOkUsesInnerShrink(t *testing.T) {
	r := ResultOf[uint32, string](Uint32(), String())
	got := collect(r.Shrink(Ok[uint32, string](5)))
	if len(got) == 0 {
		t.Fatal("expected at least one shrink candidate for Ok(5)")
	}
	for _, c := range got {
		v, ok := c.Value()
		if !ok || v >= 5 {
			t.Fatalf("shrink(Ok(5)) yielded non-decreasing candidate %+v", c)
		}
	}
}
