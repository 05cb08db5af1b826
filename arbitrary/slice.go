package arbitrary

import (
	"iter"
	"strings"

	"github.com/nomagicln/propcheck/rand"
)

// Slice builds the catalog entry for []T out of T's own catalog entry.
// Generate first draws a length n in [0, size], then draws n elements via
// elem.Generate with the same Gen. Shrink yields, in order:
//
//  1. shorter slices produced by removing contiguous blocks, largest
//     first (the whole slice, then halves, quarters, eighths, ... down to
//     single elements): the same halving discipline as integer shrinking,
//     so the driver reaches small counter-examples fast;
//  2. equal-length slices with exactly one element replaced by one of its
//     own shrinks, scanned left to right.
func Slice[T any](elem Arbitrary[T]) Arbitrary[[]T] {
	return New(
		func(g rand.Gen) []T {
			n := g.Intn(0, g.Size()+1)
			xs := make([]T, n)
			for i := range xs {
				xs[i] = elem.Generate(g)
			}
			return xs
		},
		func(xs []T) iter.Seq[[]T] { return sliceShrink(xs, elem.Shrink) },
		func(xs []T) string {
			parts := make([]string, len(xs))
			for i, x := range xs {
				parts[i] = elem.Show(x)
			}
			return "[" + strings.Join(parts, ", ") + "]"
		},
	)
}

func sliceShrink[T any](xs []T, elemShrink func(T) iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(xs)
		for k := n; k >= 1; k /= 2 {
			for i := 0; i+k <= n; i += k {
				cand := make([]T, 0, n-k)
				cand = append(cand, xs[:i]...)
				cand = append(cand, xs[i+k:]...)
				if !yield(cand) {
					return
				}
			}
			if k == 1 {
				break
			}
		}
		for i := range xs {
			for s := range elemShrink(xs[i]) {
				cand := make([]T, n)
				copy(cand, xs)
				cand[i] = s
				if !yield(cand) {
					return
				}
			}
		}
	}
}
