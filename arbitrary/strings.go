package arbitrary

import (
	"iter"

	"github.com/nomagicln/propcheck/rand"
)

// String is the catalog entry for string, treated as an ordered sequence
// of runes and shrunk accordingly via the same block-removal and
// element-shrink strategy as Slice.
func String() Arbitrary[string] {
	runeArb := Rune()
	return New(
		func(g rand.Gen) string {
			n := g.Intn(0, g.Size()+1)
			rs := make([]rune, n)
			for i := range rs {
				rs[i] = runeArb.Generate(g)
			}
			return string(rs)
		},
		func(s string) iter.Seq[string] {
			rs := []rune(s)
			return func(yield func(string) bool) {
				for cand := range sliceShrink(rs, runeArb.Shrink) {
					if !yield(string(cand)) {
						return
					}
				}
			}
		},
		func(s string) string { return "\"" + s + "\"" },
	)
}
