package testable

import (
	"fmt"
	"iter"

	"github.com/nomagicln/propcheck/rand"
)

// Testable is the uniform capability every adapted predicate shape exposes:
// given randomness, produce an Outcome; and produce the lazy sequence of
// "same computation, one shrink step applied to its captured arguments".
// Boolean and Outcome-valued testables have no arguments to shrink and so
// report an empty sequence.
type Testable interface {
	// Result evaluates the testable, drawing any fresh randomness it
	// still needs from g.
	Result(g rand.Gen) Outcome
	// ShrunkVariants returns the next generation of testables, each
	// representing this computation with one of its captured arguments
	// replaced by a single shrink step.
	ShrunkVariants() iter.Seq[Testable]
}

// boolTestable adapts a plain bool.
type boolTestable bool

func (b boolTestable) Result(rand.Gen) Outcome            { return FromBool(bool(b)) }
func (b boolTestable) ShrunkVariants() iter.Seq[Testable] { return noShrinks }

// Bool lifts a plain boolean into a Testable.
func Bool(b bool) Testable { return boolTestable(b) }

// outcomeTestable adapts an already-produced Outcome.
type outcomeTestable Outcome

func (o outcomeTestable) Result(rand.Gen) Outcome            { return Outcome(o) }
func (o outcomeTestable) ShrunkVariants() iter.Seq[Testable] { return noShrinks }

// FromOutcome lifts an Outcome into a Testable, returned unchanged by
// Result.
func FromOutcome(o Outcome) Testable { return outcomeTestable(o) }

func noShrinks(func(Testable) bool) {}

// Recover turns a captured panic into a Failed outcome, the core's only
// mechanism for converting a runtime abort in user code into a shrinkable
// counter-example. Defer it directly (defer Recover(&out, witness)) around
// the body that invokes user code, passing the address of the Outcome to
// populate; called from inside some other deferred function it recovers
// nothing, since recover only stops a panic when called directly by the
// deferred function.
func Recover(out *Outcome, witness []string) {
	if r := recover(); r != nil {
		*out = Fail(witness, fmt.Errorf("%v", r))
	}
}
