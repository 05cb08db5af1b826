package propcheck

// Config is process-local and immutable for the duration of one Check
// run. Construct one via DefaultConfig and override fields rather than
// building one from scratch; a zero Config is not meaningful.
type Config struct {
	// Tests is the number of passing outcomes required to declare
	// success.
	Tests int
	// MaxTests is the total outcomes, including discards, before
	// giving up.
	MaxTests int
	// Size is the initial size parameter handed to generators.
	Size int
	// MinTestsPassed is the minimum passes required even if MaxTests is
	// exhausted; below this the run reports Exhausted rather than
	// Success.
	MinTestsPassed int
	// MaxDiscardRatio bounds discards relative to passes: once
	// discarded exceeds MaxDiscardRatio * max(1, passed), the run ends
	// early as Exhausted, independent of MaxTests. Disabled (0) by
	// default so a precondition-heavy property where discards dominate
	// can still succeed as long as MaxTests isn't exhausted.
	MaxDiscardRatio float64
	// MaxShrinkCount bounds the number of accepted shrink steps per
	// failure. The catalog's shrink sequences already terminate on
	// their own; this only bounds how long a pathological user-defined
	// type's descent is allowed to run.
	MaxShrinkCount int
	// Seed seeds the run's Gen. Zero derives one from the current time;
	// either way the seed used is reported on RunResult so a failure
	// can be replayed.
	Seed int64
}

// DefaultConfig returns the standard run parameters: 100 passes to
// succeed, a 10000-outcome ceiling, size 100, and a clock-derived seed.
func DefaultConfig() Config {
	return Config{
		Tests:           100,
		MaxTests:        10000,
		Size:            100,
		MinTestsPassed:  0,
		MaxDiscardRatio: 0,
		MaxShrinkCount:  1000,
		Seed:            0,
	}
}
