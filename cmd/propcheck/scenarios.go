package main

import (
	"slices"

	"github.com/nomagicln/propcheck"
	"github.com/nomagicln/propcheck/arbitrary"
	"github.com/nomagicln/propcheck/prop"
	"github.com/nomagicln/propcheck/testable"
)

// scenario pairs a named, buildable Testable with an optional Config
// tweak, so the demo CLI can run the same catalog of small properties the
// package's own end-to-end tests exercise.
type scenario struct {
	Name        string
	Description string
	Build       func() testable.Testable
	Configure   func(cfg *propcheck.Config)
}

func reverseInt64(xs []int64) []int64 {
	out := make([]int64, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	return out
}

func buggyReverse(xs []int64) []int64 {
	if len(xs) == 0 {
		return []int64{}
	}
	rest := xs[1:]
	out := make([]int64, len(rest))
	for i, v := range rest {
		out[len(rest)-1-i] = v
	}
	return out
}

func sieveBuggy(n int) []int {
	if n < 2 {
		return nil
	}
	isComposite := make([]bool, n+1)
	var primes []int
	for p := 2; p <= n; p++ {
		if isComposite[p] {
			continue
		}
		primes = append(primes, p)
		for j := p*p + p; j <= n; j += p {
			isComposite[j] = true
		}
	}
	return primes
}

func isPrimeTrialDivision(k int) bool {
	if k < 2 {
		return false
	}
	for d := 2; d*d <= k; d++ {
		if k%d == 0 {
			return false
		}
	}
	return true
}

var scenarios = []scenario{
	{
		Name:        "reverse-involution",
		Description: "reversing a slice twice always returns the original (always succeeds)",
		Build: func() testable.Testable {
			return prop.ForAll1(arbitrary.Slice(arbitrary.Int64()), prop.Bool(func(xs []int64) bool {
				return slices.Equal(xs, reverseInt64(reverseInt64(xs)))
			}))
		},
	},
	{
		Name:        "buggy-reverse",
		Description: "a reverse that drops the first element breaks the involution for every non-empty slice",
		Build: func() testable.Testable {
			return prop.ForAll1(arbitrary.Slice(arbitrary.Int64()), prop.Bool(func(xs []int64) bool {
				return slices.Equal(xs, buggyReverse(buggyReverse(xs)))
			}))
		},
	},
	{
		Name:        "sieve-off-by-one",
		Description: "a sieve that starts marking composites one multiple too late wrongly calls 4 prime",
		Build: func() testable.Testable {
			return prop.ForAll1(arbitrary.Uint(), prop.Bool(func(n uint) bool {
				for _, p := range sieveBuggy(int(n)) {
					if !isPrimeTrialDivision(p) {
						return false
					}
				}
				return true
			}))
		},
	},
	{
		Name:        "overflow-at-max",
		Description: "n+1 > n fails only at uint8's maximum, where addition wraps to zero",
		Build: func() testable.Testable {
			return prop.ForAll1(arbitrary.Uint8(), prop.Bool(func(n uint8) bool {
				return n+1 > n
			}))
		},
		Configure: func(cfg *propcheck.Config) {
			cfg.Size = 2000
			cfg.Tests = 5000
			cfg.MaxTests = 20000
		},
	},
	{
		Name:        "discard-dominated",
		Description: "a property guarded by len(xs) == 1 discards almost every draw but still succeeds",
		Build: func() testable.Testable {
			return prop.ForAll1(arbitrary.Slice(arbitrary.Int32()), func(xs []int32) testable.Testable {
				if len(xs) != 1 {
					return testable.FromOutcome(testable.Discard())
				}
				return testable.Bool(xs[0] == xs[len(xs)-1])
			})
		},
		Configure: func(cfg *propcheck.Config) {
			cfg.Tests = 1
		},
	},
	{
		Name:        "panicking-predicate",
		Description: "an out-of-range slice index panics; the panic is captured and the index shrinks to the boundary",
		Build: func() testable.Testable {
			arr := []int{10, 20, 30}
			return prop.ForAll1(arbitrary.Uint(), func(n uint) testable.Testable {
				return testable.Bool(arr[n] >= 0)
			})
		},
	},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return scenario{}, false
}
