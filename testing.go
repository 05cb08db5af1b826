package propcheck

import "github.com/nomagicln/propcheck/testable"

// TestingT is the minimal reporting surface TestingRun needs, satisfied by
// *testing.T and *testing.B. Declared locally so this package does not
// import "testing" into library consumers.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// TestingRun runs t under DefaultConfig and fails tb when the run does not
// succeed, including the shrunk witness and the seed in the message so the
// failure can be replayed.
func TestingRun(tb TestingT, t testable.Testable) {
	tb.Helper()
	TestingRunWithConfig(tb, DefaultConfig(), t)
}

// TestingRunWithConfig is TestingRun with an explicit Config.
func TestingRunWithConfig(tb TestingT, cfg Config, t testable.Testable) {
	tb.Helper()
	if result := CheckWithConfig(cfg, t); !result.Success() {
		tb.Errorf("%s (seed %d)", result, result.Seed)
	}
}
