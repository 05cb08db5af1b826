// Package rand defines the randomness contract the rest of propcheck draws
// on, and ships the default implementation backed by math/rand.
//
// A single Gen is constructed once per run (see propcheck.Check) and
// threaded through every generation call in that run; its Size is mutable
// between tests but stable within a single generation pass, mirroring
// gopter's GenParameters.MaxSize/Rng split.
package rand

import (
	"fmt"
	mathrand "math/rand"
	"time"
)

// Gen is the randomness source every Arbitrary instance draws from.
// Implementations must be safe to reuse across many calls within one run;
// the core never constructs more than one per run.
type Gen interface {
	// Uint32 returns a uniformly distributed uint32.
	Uint32() uint32
	// Uint64 returns a uniformly distributed uint64.
	Uint64() uint64
	// Intn returns a uniformly distributed int in [lo, hi).
	// Panics if lo >= hi.
	Intn(lo, hi int) int
	// Float64 returns a uniformly distributed float64 in [0, 1).
	Float64() float64
	// Size returns the current size parameter. Stable within a single
	// generation pass; the driver may change it between tests.
	Size() int
}

// Source is the default Gen, backed by math/rand.
type Source struct {
	rng  *mathrand.Rand
	seed int64
	size int
}

// New constructs a Source from seed. A seed of 0 derives one from the
// current time, so every unseeded run is still reproducible after the fact
// via the seed reported on RunResult.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  mathrand.New(mathrand.NewSource(seed)),
		seed: seed,
		size: 0,
	}
}

// Seed returns the seed this Source was constructed with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Size implements Gen.
func (s *Source) Size() int {
	return s.size
}

// SetSize changes the size parameter for subsequent generation calls.
// Called by the driver between tests, never mid-generation.
func (s *Source) SetSize(size int) {
	if size < 0 {
		panic(fmt.Sprintf("rand: negative size %d", size))
	}
	s.size = size
}

// Uint32 implements Gen.
func (s *Source) Uint32() uint32 {
	return s.rng.Uint32()
}

// Uint64 implements Gen.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Intn implements Gen. Panics if lo >= hi, a programmer error.
func (s *Source) Intn(lo, hi int) int {
	if lo >= hi {
		panic(fmt.Sprintf("rand: invalid range [%d, %d)", lo, hi))
	}
	return lo + s.rng.Intn(hi-lo)
}

// Float64 implements Gen.
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

var _ Gen = (*Source)(nil)
