// Package propcheck is a property-based testing engine: given a predicate
// over typed inputs it generates random samples, runs the predicate
// against each, and on failure shrinks the failing input to a locally
// minimal counter-example. This package holds the driver: the run/shrink
// state machine that schedules generation attempts, honors the
// pass/fail/discard trichotomy, and performs greedy descent through the
// shrink space on failure. Generators live in the arbitrary package,
// predicate adapters in testable and prop.
package propcheck

import (
	"github.com/google/uuid"

	"github.com/nomagicln/propcheck/rand"
	"github.com/nomagicln/propcheck/testable"
)

// Check runs t with DefaultConfig.
func Check(t testable.Testable) RunResult {
	return CheckWithConfig(DefaultConfig(), t)
}

// CheckWithConfig runs t under cfg: generation until cfg.Tests passes,
// the cfg.MaxTests ceiling, or a failure; then shrinking.
func CheckWithConfig(cfg Config, t testable.Testable) RunResult {
	g := rand.New(cfg.Seed)
	g.SetSize(cfg.Size)

	result := RunResult{RunID: uuid.NewString(), Seed: g.Seed()}

	for {
		if result.Passed+result.Discarded >= cfg.MaxTests {
			return finishWithoutFailure(result, cfg)
		}
		if exceedsDiscardRatio(result, cfg) {
			result.Kind = Exhausted
			return result
		}

		out := t.Result(g)
		switch out.Status {
		case testable.Passed:
			result.Passed++
			if result.Passed >= cfg.Tests {
				result.Kind = Success
				return result
			}
		case testable.Discarded:
			result.Discarded++
		case testable.Failed:
			return shrinkToMinimum(result, cfg, g, t, out)
		}
	}
}

func exceedsDiscardRatio(result RunResult, cfg Config) bool {
	if cfg.MaxDiscardRatio <= 0 {
		return false
	}
	base := result.Passed
	if base < 1 {
		base = 1
	}
	return float64(result.Discarded) > cfg.MaxDiscardRatio*float64(base)
}

func finishWithoutFailure(result RunResult, cfg Config) RunResult {
	if result.Passed >= cfg.MinTestsPassed {
		result.Kind = Success
	} else {
		result.Kind = Exhausted
	}
	return result
}

// shrinkToMinimum performs the greedy descent: repeatedly scan the
// current testable's shrink variants in order, accept the first one that
// still fails, and descend from there. The loop stops at the first local
// minimum (no single remaining shrink step still fails) or once
// cfg.MaxShrinkCount accepted steps have been taken.
func shrinkToMinimum(result RunResult, cfg Config, g rand.Gen, current testable.Testable, failing testable.Outcome) RunResult {
	for result.ShrinkDepth < cfg.MaxShrinkCount {
		improved := false
		for candidate := range current.ShrunkVariants() {
			result.ShrinksTried++
			out := candidate.Result(g)
			if out.Status == testable.Failed {
				current = candidate
				failing = out
				result.ShrinkDepth++
				improved = true
				break
			}
		}
		if !improved {
			break
		}
	}

	result.Kind = Violation
	result.Witness = failing.Witness
	result.Err = failing.Err
	return result
}
