package arbitrary

import (
	"iter"
	"math"
	"strconv"

	"github.com/nomagicln/propcheck/rand"
)

// floatShrinkEpsilon is the point below which halving v toward zero stops
// producing meaningfully smaller candidates.
const floatShrinkEpsilon = 1e-6

// Float64 is the catalog entry for float64. Generate draws uniformly in
// [-size, size]. Shrink emits, in order: 0.0 (if v is non-zero and
// finite), the truncated integer part cast back to float (when distinct
// from both v and the already-emitted zero), then v/2, v/4, ... until the
// magnitude drops under floatShrinkEpsilon.
// NaN and +/-Inf shrink straight to 0.0, since no arithmetic on them
// produces a meaningfully simpler value.
func Float64() Arbitrary[float64] {
	return New(
		func(g rand.Gen) float64 {
			size := float64(g.Size())
			if size == 0 {
				return 0
			}
			magnitude := g.Float64() * size
			if g.Intn(0, 2) == 1 {
				magnitude = -magnitude
			}
			return magnitude
		},
		floatShrink,
		func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	)
}

func floatShrink(v float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			yield(0)
			return
		}
		if v == 0 {
			return
		}
		if !yield(0) {
			return
		}
		if trunc := math.Trunc(v); trunc != v && trunc != 0 {
			if !yield(trunc) {
				return
			}
		}
		for cur := v / 2; math.Abs(cur) >= floatShrinkEpsilon; cur /= 2 {
			if !yield(cur) {
				return
			}
		}
	}
}
