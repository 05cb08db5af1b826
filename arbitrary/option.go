package arbitrary

import (
	"iter"

	"github.com/nomagicln/propcheck/rand"
)

// Option is the catalog's optional value: present or absent, generic over
// the inner type. It mirrors Option<T>/Maybe<T> rather than Go's usual
// pointer-or-zero-value idiom so that "absent" and "present zero value"
// stay distinguishable through shrinking.
type Option[T any] struct {
	Valid bool
	Value T
}

// None constructs an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Some constructs a present Option wrapping v.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// OptionOf builds the catalog entry for Option[T] out of T's entry.
// Generate returns None with probability ~= 1/(size+1), else Some(elem).
// Shrink(None) = []; Shrink(Some(v)) = [None] followed by Some(v') for
// every v' in elem.Shrink(v): None is always simpler than any Some.
func OptionOf[T any](elem Arbitrary[T]) Arbitrary[Option[T]] {
	return New(
		func(g rand.Gen) Option[T] {
			if g.Intn(0, g.Size()+1) == 0 {
				return None[T]()
			}
			return Some(elem.Generate(g))
		},
		func(o Option[T]) iter.Seq[Option[T]] {
			if !o.Valid {
				return Empty[Option[T]]()
			}
			return func(yield func(Option[T]) bool) {
				if !yield(None[T]()) {
					return
				}
				for v := range elem.Shrink(o.Value) {
					if !yield(Some(v)) {
						return
					}
				}
			}
		},
		func(o Option[T]) string {
			if !o.Valid {
				return "None"
			}
			return "Some(" + elem.Show(o.Value) + ")"
		},
	)
}
