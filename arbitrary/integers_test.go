package arbitrary

import (
	"testing"

	"github.com/nomagicln/propcheck/rand"
)

func TestUnsignedShrinkStrictDescentAndTerminates(t *testing.T) {
	u := Uint32()
	for _, n := range []uint32{0, 1, 2, 3, 7, 100, 12345} {
		for s := range u.Shrink(n) {
			if s >= n {
				t.Fatalf("shrink(%d) yielded non-decreasing candidate %d", n, s)
			}
		}
	}
}

func TestUnsignedShrinkZeroIsLeaf(t *testing.T) {
	if got := collect(Uint32().Shrink(0)); len(got) != 0 {
		t.Errorf("shrink(0) should be empty, got %v", got)
	}
}

func TestUnsignedShrinkIncludesZero(t *testing.T) {
	got := collect(Uint32().Shrink(42))
	if len(got) == 0 || got[0] != 0 {
		t.Errorf("shrink(42) should start with 0, got %v", got)
	}
}

func TestSignedShrinkStrictDescentByAbs(t *testing.T) {
	s := Int32()
	for _, n := range []int32{0, 1, -1, 5, -5, 100, -100} {
		for cand := range s.Shrink(n) {
			absN, absC := abs32(n), abs32(cand)
			simpler := absC < absN || (absC == absN && cand >= 0 && n < 0)
			if !simpler {
				t.Fatalf("shrink(%d) yielded %d, not strictly simpler", n, cand)
			}
		}
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestSignedShrinkFlipsSignFirst(t *testing.T) {
	got := collect(Int32().Shrink(-8))
	if len(got) < 2 || got[0] != 0 || got[1] != 8 {
		t.Errorf("shrink(-8) should start with [0, 8, ...], got %v", got)
	}
}

func TestIntGenerateRespectsSize(t *testing.T) {
	g := rand.New(7)
	g.SetSize(10)
	arb := Int()
	for i := 0; i < 500; i++ {
		v := arb.Generate(g)
		if v < -10 || v > 10 {
			t.Fatalf("Int() generated %d outside [-10, 10]", v)
		}
	}
}

func TestUintGenerateRespectsSize(t *testing.T) {
	g := rand.New(7)
	g.SetSize(10)
	arb := Uint()
	for i := 0; i < 500; i++ {
		v := arb.Generate(g)
		if v > 10 {
			t.Fatalf("Uint() generated %d above 10", v)
		}
	}
}
