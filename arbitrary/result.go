package arbitrary

import (
	"iter"

	"github.com/nomagicln/propcheck/rand"
)

// Result is the catalog's two-variant sum type: either a T (Ok) or an E
// (Err), generic over both. It stands in for Result<T, E> / Either<E, T>.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok constructs the success variant.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{ok: true, value: v} }

// Err constructs the failure variant.
func Err[T, E any](e E) Result[T, E] { return Result[T, E]{err: e} }

// IsOk reports whether r holds the success variant.
func (r Result[T, E]) IsOk() bool { return r.ok }

// Value returns the success payload and whether r was Ok.
func (r Result[T, E]) Value() (T, bool) { return r.value, r.ok }

// Error returns the failure payload and whether r was Err.
func (r Result[T, E]) Error() (E, bool) { return r.err, !r.ok }

// ResultOf builds the catalog entry for Result[T, E] from the two
// branches' own entries. Generate picks either side with equal
// probability. Shrink never crosses the variant boundary: Ok(v) shrinks
// through okArb.Shrink(v) wrapped back in Ok, and Err(e) likewise through
// errArb.Shrink(e) wrapped in Err.
func ResultOf[T, E any](okArb Arbitrary[T], errArb Arbitrary[E]) Arbitrary[Result[T, E]] {
	return New(
		func(g rand.Gen) Result[T, E] {
			if g.Intn(0, 2) == 1 {
				return Ok[T, E](okArb.Generate(g))
			}
			return Err[T, E](errArb.Generate(g))
		},
		func(r Result[T, E]) iter.Seq[Result[T, E]] {
			return func(yield func(Result[T, E]) bool) {
				if r.ok {
					for v := range okArb.Shrink(r.value) {
						if !yield(Ok[T, E](v)) {
							return
						}
					}
					return
				}
				for e := range errArb.Shrink(r.err) {
					if !yield(Err[T, E](e)) {
						return
					}
				}
			}
		},
		func(r Result[T, E]) string {
			if r.ok {
				return "Ok(" + okArb.Show(r.value) + ")"
			}
			return "Err(" + errArb.Show(r.err) + ")"
		},
	)
}
