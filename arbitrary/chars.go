package arbitrary

import (
	"iter"
	"unicode"

	"github.com/nomagicln/propcheck/rand"
)

// printableLo and printableHi bound the ASCII printable range Generate
// draws code points from.
const (
	printableLo = 0x20
	printableHi = 0x7e
)

// Rune is the catalog entry for rune. Generate draws a code point from the
// ASCII printable range. Shrink prefers the lowercase form of an uppercase
// letter first (this type's pre-order treats lowercase as simpler than its
// uppercase counterpart of the same letter), then the zero rune, then
// progressively lower code points via the same binary descent used for
// unsigned integers.
func Rune() Arbitrary[rune] {
	return New(
		func(g rand.Gen) rune { return rune(g.Intn(printableLo, printableHi+1)) },
		runeShrink,
		func(v rune) string { return "'" + string(v) + "'" },
	)
}

func runeShrink(c rune) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		if c == 0 {
			return
		}
		if unicode.IsUpper(c) {
			if lower := unicode.ToLower(c); lower != c {
				if !yield(lower) {
					return
				}
			}
		}
		if !yield(0) {
			return
		}
		for i := c / 2; i != 0; i /= 2 {
			if !yield(c - i) {
				return
			}
		}
	}
}
