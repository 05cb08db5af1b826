// Package prop provides the public constructors for building Testables
// out of ordinary predicate functions, named and shaped after gopter's
// prop.ForAll / prop.ForAllNoShrink.
package prop

import (
	"github.com/nomagicln/propcheck/arbitrary"
	"github.com/nomagicln/propcheck/testable"
)

// ForAll0 lifts a nullary predicate: a thunk that itself returns a
// Testable, typically testable.Bool(...) or testable.FromOutcome(...).
// A panic inside body is captured and reported as a failure with no
// witness, since there are no arguments to render.
func ForAll0(body func() testable.Testable) testable.Testable {
	return testable.Nullary(body)
}

// ForAll1 lifts a 1-argument predicate. condition returns a Testable: a
// bool via testable.Bool (or wrap the whole predicate with Bool below), an
// Outcome via testable.FromOutcome, or any other Testable.
func ForAll1[A any](a arbitrary.Arbitrary[A], condition func(A) testable.Testable) testable.Testable {
	return testable.Func1(a, condition)
}

// ForAll2 lifts a 2-argument predicate.
func ForAll2[A, B any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], condition func(A, B) testable.Testable) testable.Testable {
	return testable.Func2(a, b, condition)
}

// ForAll3 lifts a 3-argument predicate.
func ForAll3[A, B, C any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], c arbitrary.Arbitrary[C], condition func(A, B, C) testable.Testable) testable.Testable {
	return testable.Func3(a, b, c, condition)
}

// ForAll4 lifts a 4-argument predicate, the widest fixed arity this
// catalog supports.
func ForAll4[A, B, C, D any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], c arbitrary.Arbitrary[C], d arbitrary.Arbitrary[D], condition func(A, B, C, D) testable.Testable) testable.Testable {
	return testable.Func4(a, b, c, d, condition)
}

// ForAll1NoShrink, ForAll2NoShrink, ForAll3NoShrink, ForAll4NoShrink behave
// like their shrinking counterparts but never shrink a failing witness:
// gopter's ForAllNoShrink, for predicates whose arguments are already
// sieved or otherwise not meaningfully shrinkable.
func ForAll1NoShrink[A any](a arbitrary.Arbitrary[A], condition func(A) testable.Testable) testable.Testable {
	return testable.Func1NoShrink(a, condition)
}

func ForAll2NoShrink[A, B any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], condition func(A, B) testable.Testable) testable.Testable {
	return testable.Func2NoShrink(a, b, condition)
}

func ForAll3NoShrink[A, B, C any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], c arbitrary.Arbitrary[C], condition func(A, B, C) testable.Testable) testable.Testable {
	return testable.Func3NoShrink(a, b, c, condition)
}

func ForAll4NoShrink[A, B, C, D any](a arbitrary.Arbitrary[A], b arbitrary.Arbitrary[B], c arbitrary.Arbitrary[C], d arbitrary.Arbitrary[D], condition func(A, B, C, D) testable.Testable) testable.Testable {
	return testable.Func4NoShrink(a, b, c, d, condition)
}

// Bool wraps a plain bool-returning predicate as a Testable-returning one,
// the common case: ForAll1(arb, prop.Bool(func(n int) bool { return n >= 0 })).
func Bool[A any](predicate func(A) bool) func(A) testable.Testable {
	return func(a A) testable.Testable { return testable.Bool(predicate(a)) }
}

// Bool2 is Bool for 2-argument predicates.
func Bool2[A, B any](predicate func(A, B) bool) func(A, B) testable.Testable {
	return func(a A, b B) testable.Testable { return testable.Bool(predicate(a, b)) }
}

// Bool3 is Bool for 3-argument predicates.
func Bool3[A, B, C any](predicate func(A, B, C) bool) func(A, B, C) testable.Testable {
	return func(a A, b B, c C) testable.Testable { return testable.Bool(predicate(a, b, c)) }
}

// Bool4 is Bool for 4-argument predicates.
func Bool4[A, B, C, D any](predicate func(A, B, C, D) bool) func(A, B, C, D) testable.Testable {
	return func(a A, b B, c C, d D) testable.Testable { return testable.Bool(predicate(a, b, c, d)) }
}
