package arbitrary

import (
	"iter"
	"strconv"

	"github.com/nomagicln/propcheck/rand"
)

// Bool is the catalog entry for bool. Generate flips a fair coin;
// shrink(true) = [false], shrink(false) = []: false is the leaf.
func Bool() Arbitrary[bool] {
	return New(
		func(g rand.Gen) bool { return g.Intn(0, 2) == 1 },
		func(v bool) iter.Seq[bool] {
			if v {
				return Of1(false)
			}
			return Empty[bool]()
		},
		strconv.FormatBool,
	)
}
