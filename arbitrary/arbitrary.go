// Package arbitrary is the catalog of generation and shrinking strategies
// for the types propcheck knows how to draw samples of: booleans,
// integers, floats, runes, strings, slices, optional values, two-variant
// sums, and fixed-arity tuples, plus the extension point (New) by which a
// caller's own type joins the catalog.
//
// Every Arbitrary[T] bundles exactly the three operations the core cares
// about: Generate (draw a sample bounded by the current size), Shrink
// (a lazy sequence of strictly simpler candidates), and Show (a textual
// rendering used in failure witnesses). The split mirrors gopter's
// Gen/Shrinker/Sieve trio, but is expressed with generics instead of
// gopter's reflection-driven interface{} plumbing, since every type here is
// known at compile time.
package arbitrary

import (
	"iter"

	"github.com/nomagicln/propcheck/rand"
)

// Arbitrary is the catalog entry for a type T: how to draw a sample, how to
// shrink one, and how to render one for a witness.
type Arbitrary[T any] interface {
	// Generate draws a value whose magnitude is bounded by g.Size().
	// Must never panic for any g.Size() >= 0.
	Generate(g rand.Gen) T
	// Shrink returns a lazy, finite sequence of candidates strictly
	// simpler than v under T's pre-order. May be empty.
	Shrink(v T) iter.Seq[T]
	// Show renders v for inclusion in a failure witness.
	Show(v T) string
}

// funcArbitrary adapts three plain functions into an Arbitrary[T], the way
// gopter's gen package builds concrete generators out of closures rather
// than one struct type per kind.
type funcArbitrary[T any] struct {
	generate func(rand.Gen) T
	shrink   func(T) iter.Seq[T]
	show     func(T) string
}

func (f funcArbitrary[T]) Generate(g rand.Gen) T  { return f.generate(g) }
func (f funcArbitrary[T]) Shrink(v T) iter.Seq[T] { return f.shrink(v) }
func (f funcArbitrary[T]) Show(v T) string        { return f.show(v) }

// New is the extension point: build an Arbitrary[T] for a user-defined
// type from its generate/shrink/show functions. The obligations are the
// same ones every built-in entry carries: generate must be total for
// every size >= 0, and shrink must be a pure function whose candidates
// are finite in number and strictly simpler than their source.
func New[T any](generate func(rand.Gen) T, shrink func(T) iter.Seq[T], show func(T) string) Arbitrary[T] {
	return funcArbitrary[T]{generate: generate, shrink: shrink, show: show}
}

// Empty is the shrink sequence for a leaf value: no candidates.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Of1 returns a shrink sequence yielding exactly one candidate.
func Of1[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(v)
	}
}

// Concat chains shrink sequences in order, short-circuiting downstream
// sequences as soon as a consumer stops pulling, so unused branches are
// never materialized.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			cont := true
			seq(func(v T) bool {
				cont = yield(v)
				return cont
			})
			if !cont {
				return
			}
		}
	}
}
