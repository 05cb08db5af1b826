package prop

import (
	"testing"

	"github.com/nomagicln/propcheck/arbitrary"
	"github.com/nomagicln/propcheck/rand"
)

func TestForAll1WithBoolPredicate(t *testing.T) {
	tst := ForAll1(arbitrary.Uint32(), Bool(func(n uint32) bool { return n/2 <= n }))
	g := rand.New(1)
	g.SetSize(10)
	out := tst.Result(g)
	if out.Status.String() != "Passed" {
		t.Fatalf("expected Passed, got %v", out.Status)
	}
}

func TestForAll2Composes(t *testing.T) {
	tst := ForAll2(arbitrary.Uint8(), arbitrary.Uint8(), Bool2(func(a, b uint8) bool {
		return a+b >= a // may overflow, but exercises the wiring either way
	}))
	g := rand.New(2)
	g.SetSize(50)
	_ = tst.Result(g) // just confirm it doesn't panic
}
