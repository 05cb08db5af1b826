package arbitrary

import (
	"iter"

	"github.com/nomagicln/propcheck/rand"
)

// Tuple2, Tuple3, Tuple4 are the catalog's fixed-arity tuples. Generate
// draws each component independently (same Gen, so later components see
// whatever size the driver configured). Shrink yields tuples with exactly
// one component replaced by one of its own shrinks, scanned left to
// right: this preserves strict descent because each component's shrink
// relation already does. Four is the widest arity provided; callers
// needing more components nest tuples.

type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple2Of builds the catalog entry for Tuple2[A, B].
func Tuple2Of[A, B any](a Arbitrary[A], b Arbitrary[B]) Arbitrary[Tuple2[A, B]] {
	return New(
		func(g rand.Gen) Tuple2[A, B] {
			return Tuple2[A, B]{V1: a.Generate(g), V2: b.Generate(g)}
		},
		func(t Tuple2[A, B]) iter.Seq[Tuple2[A, B]] {
			return func(yield func(Tuple2[A, B]) bool) {
				for v := range a.Shrink(t.V1) {
					if !yield(Tuple2[A, B]{V1: v, V2: t.V2}) {
						return
					}
				}
				for v := range b.Shrink(t.V2) {
					if !yield(Tuple2[A, B]{V1: t.V1, V2: v}) {
						return
					}
				}
			}
		},
		func(t Tuple2[A, B]) string {
			return "(" + a.Show(t.V1) + ", " + b.Show(t.V2) + ")"
		},
	)
}

// Tuple3Of builds the catalog entry for Tuple3[A, B, C].
func Tuple3Of[A, B, C any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C]) Arbitrary[Tuple3[A, B, C]] {
	return New(
		func(g rand.Gen) Tuple3[A, B, C] {
			return Tuple3[A, B, C]{V1: a.Generate(g), V2: b.Generate(g), V3: c.Generate(g)}
		},
		func(t Tuple3[A, B, C]) iter.Seq[Tuple3[A, B, C]] {
			return func(yield func(Tuple3[A, B, C]) bool) {
				for v := range a.Shrink(t.V1) {
					if !yield(Tuple3[A, B, C]{V1: v, V2: t.V2, V3: t.V3}) {
						return
					}
				}
				for v := range b.Shrink(t.V2) {
					if !yield(Tuple3[A, B, C]{V1: t.V1, V2: v, V3: t.V3}) {
						return
					}
				}
				for v := range c.Shrink(t.V3) {
					if !yield(Tuple3[A, B, C]{V1: t.V1, V2: t.V2, V3: v}) {
						return
					}
				}
			}
		},
		func(t Tuple3[A, B, C]) string {
			return "(" + a.Show(t.V1) + ", " + b.Show(t.V2) + ", " + c.Show(t.V3) + ")"
		},
	)
}

// Tuple4Of builds the catalog entry for Tuple4[A, B, C, D].
func Tuple4Of[A, B, C, D any](a Arbitrary[A], b Arbitrary[B], c Arbitrary[C], d Arbitrary[D]) Arbitrary[Tuple4[A, B, C, D]] {
	return New(
		func(g rand.Gen) Tuple4[A, B, C, D] {
			return Tuple4[A, B, C, D]{V1: a.Generate(g), V2: b.Generate(g), V3: c.Generate(g), V4: d.Generate(g)}
		},
		func(t Tuple4[A, B, C, D]) iter.Seq[Tuple4[A, B, C, D]] {
			return func(yield func(Tuple4[A, B, C, D]) bool) {
				for v := range a.Shrink(t.V1) {
					if !yield(Tuple4[A, B, C, D]{V1: v, V2: t.V2, V3: t.V3, V4: t.V4}) {
						return
					}
				}
				for v := range b.Shrink(t.V2) {
					if !yield(Tuple4[A, B, C, D]{V1: t.V1, V2: v, V3: t.V3, V4: t.V4}) {
						return
					}
				}
				for v := range c.Shrink(t.V3) {
					if !yield(Tuple4[A, B, C, D]{V1: t.V1, V2: t.V2, V3: v, V4: t.V4}) {
						return
					}
				}
				for v := range d.Shrink(t.V4) {
					if !yield(Tuple4[A, B, C, D]{V1: t.V1, V2: t.V2, V3: t.V3, V4: v}) {
						return
					}
				}
			}
		},
		func(t Tuple4[A, B, C, D]) string {
			return "(" + a.Show(t.V1) + ", " + b.Show(t.V2) + ", " + c.Show(t.V3) + ", " + d.Show(t.V4) + ")"
		},
	)
}
