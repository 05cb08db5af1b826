package testable

import (
	"iter"

	"github.com/nomagicln/propcheck/arbitrary"
	"github.com/nomagicln/propcheck/rand"
)

// nullaryTestable adapts a nullary function returning a Testable: calling
// it may itself panic, which Recover turns into a Failed outcome with no
// witness.
type nullaryTestable struct {
	body func() Testable
}

func (n nullaryTestable) Result(g rand.Gen) (out Outcome) {
	defer Recover(&out, nil)
	return n.body().Result(g)
}

func (n nullaryTestable) ShrunkVariants() iter.Seq[Testable] { return noShrinks }

// Nullary lifts a side-effecting, argument-free function into a Testable.
func Nullary(body func() Testable) Testable { return nullaryTestable{body: body} }

// funcTestable adapts a k-ary function by folding all k arguments into a
// single value T via the arbitrary catalog's tuple composition:
// Func2..Func4 below build T as arbitrary.Tuple2..4, so the tuple-shrink
// of the captured arguments is just T's own Shrink. witness renders T back
// out as the k-element [show(a1), ..., show(ak)] list, one entry per
// argument, rather than T's own single combined Show.
//
// Each call to Result draws a fresh argument and records it (pointer
// receiver: state is mutated in place), so after a failing call
// ShrunkVariants reflects the argument tuple that actually failed.
// Candidates produced by ShrunkVariants are pinned to their shrunken
// argument instead: their Result never redraws and ignores g, which keeps
// the whole shrink phase deterministic and free of further randomness.
type funcTestable[T any] struct {
	argGen   arbitrary.Arbitrary[T]
	body     func(T) Testable
	witness  func(T) []string
	arg      T
	bound    bool
	pinned   bool
	noShrink bool
}

func (f *funcTestable[T]) Result(g rand.Gen) (out Outcome) {
	arg := f.arg
	if !f.pinned {
		arg = f.argGen.Generate(g)
		f.arg = arg
		f.bound = true
	}
	witness := f.witness(arg)
	defer Recover(&out, witness)
	inner := f.body(arg).Result(g)
	if inner.Status == Failed {
		inner.Witness = witness
	}
	return inner
}

func (f *funcTestable[T]) ShrunkVariants() iter.Seq[Testable] {
	if !f.bound || f.noShrink {
		return noShrinks
	}
	return func(yield func(Testable) bool) {
		for v := range f.argGen.Shrink(f.arg) {
			cand := &funcTestable[T]{argGen: f.argGen, body: f.body, witness: f.witness, arg: v, bound: true, pinned: true}
			if !yield(cand) {
				return
			}
		}
	}
}

// Func1 lifts a 1-ary predicate body, given A's catalog entry.
func Func1[A any](a arbitrary.Arbitrary[A], body func(A) Testable) Testable {
	return &funcTestable[A]{
		argGen:  a,
		body:    body,
		witness: func(v A) []string { return []string{a.Show(v)} },
	}
}

// Func2 lifts a 2-ary predicate body.
func Func2[A, B any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], body func(A, B) Testable) Testable {
	tup := arbitrary.Tuple2Of(a, b)
	return &funcTestable[arbitrary.Tuple2[A, B]]{
		argGen: tup,
		body:   func(t arbitrary.Tuple2[A, B]) Testable { return body(t.V1, t.V2) },
		witness: func(t arbitrary.Tuple2[A, B]) []string {
			return []string{a.Show(t.V1), b.Show(t.V2)}
		},
	}
}

// Func3 lifts a 3-ary predicate body.
func Func3[A, B, C any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], c arbitrary.Arbitrary[C], body func(A, B, C) Testable) Testable {
	tup := arbitrary.Tuple3Of(a, b, c)
	return &funcTestable[arbitrary.Tuple3[A, B, C]]{
		argGen: tup,
		body:   func(t arbitrary.Tuple3[A, B, C]) Testable { return body(t.V1, t.V2, t.V3) },
		witness: func(t arbitrary.Tuple3[A, B, C]) []string {
			return []string{a.Show(t.V1), b.Show(t.V2), c.Show(t.V3)}
		},
	}
}

// Func4 lifts a 4-ary predicate body, the widest fixed arity supported;
// callers needing more nest tuples into one of A..D themselves.
func Func4[A, B, C, D any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], c arbitrary.Arbitrary[C], d arbitrary.Arbitrary[D], body func(A, B, C, D) Testable) Testable {
	tup := arbitrary.Tuple4Of(a, b, c, d)
	return &funcTestable[arbitrary.Tuple4[A, B, C, D]]{
		argGen: tup,
		body:   func(t arbitrary.Tuple4[A, B, C, D]) Testable { return body(t.V1, t.V2, t.V3, t.V4) },
		witness: func(t arbitrary.Tuple4[A, B, C, D]) []string {
			return []string{a.Show(t.V1), b.Show(t.V2), c.Show(t.V3), d.Show(t.V4)}
		},
	}
}

// Func1NoShrink, Func2NoShrink, Func3NoShrink, Func4NoShrink build a
// testable exactly like their shrinking counterparts, but never shrink a
// failing witness: useful for arguments that are already pre-sieved or
// externally constrained such that a shrunk value could violate the
// precondition the caller relied on.
func Func1NoShrink[A any](a arbitrary.Arbitrary[A], body func(A) Testable) Testable {
	t := Func1(a, body).(*funcTestable[A])
	t.noShrink = true
	return t
}

func Func2NoShrink[A, B any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], body func(A, B) Testable) Testable {
	t := Func2(a, b, body).(*funcTestable[arbitrary.Tuple2[A, B]])
	t.noShrink = true
	return t
}

func Func3NoShrink[A, B, C any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], c arbitrary.Arbitrary[C], body func(A, B, C) Testable) Testable {
	t := Func3(a, b, c, body).(*funcTestable[arbitrary.Tuple3[A, B, C]])
	t.noShrink = true
	return t
}

func Func4NoShrink[A, B, C, D any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], c arbitrary.Arbitrary[C], d arbitrary.Arbitrary[D], body func(A, B, C, D) Testable) Testable {
	t := Func4(a, b, c, d, body).(*funcTestable[arbitrary.Tuple4[A, B, C, D]])
	t.noShrink = true
	return t
}
