package arbitrary

import "testing"

func TestTuple2ShrinkOneComponentAtATime(t *testing.T) {
	arb := Tuple2Of(Uint32(), Bool())
	src := Tuple2[uint32, bool]{V1: 5, V2: true}
	for cand := range arb.Shrink(src) {
		changedFirst := cand.V1 != src.V1
		changedSecond := cand.V2 != src.V2
		if changedFirst == changedSecond {
			t.Fatalf("expected exactly one component to change, got %+v from %+v", cand, src)
		}
		if changedFirst && cand.V1 >= src.V1 {
			t.Fatalf("first component not simpler: %+v", cand)
		}
	}
}

func TestTuple3GenerateDrawsAllComponents(t *testing.T) {
	arb := Tuple3Of(Uint8(), Bool(), Uint8())
	g := newSizedGen(3)
	v := arb.Generate(g)
	if v.V1 > 3 || v.V3 > 3 {
		t.Fatalf("components exceeded size bound: %+v", v)
	}
}
