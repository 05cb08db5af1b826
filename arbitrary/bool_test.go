package arbitrary

import (
	"testing"

	"github.com/nomagicln/propcheck/rand"
)

func TestBoolShrink(t *testing.T) {
	b := Bool()
	if got := collect(b.Shrink(false)); len(got) != 0 {
		t.Errorf("shrink(false) should be empty, got %v", got)
	}
	if got := collect(b.Shrink(true)); len(got) != 1 || got[0] != false {
		t.Errorf("shrink(true) should be [false], got %v", got)
	}
}

func TestBoolGenerateNeverPanics(t *testing.T) {
	b := Bool()
	g := rand.New(1)
	for size := 0; size < 50; size++ {
		g.SetSize(size)
		_ = b.Generate(g)
	}
}

func collect[T any](seq func(func(T) bool)) []T {
	var out []T
	seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
