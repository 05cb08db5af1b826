package arbitrary

import (
	"fmt"
	"iter"

	"github.com/nomagicln/propcheck/rand"
)

// Unsigned matches every unsigned integer kind the catalog supports.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed matches every signed integer kind the catalog supports.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedN is the catalog entry for an unsigned integer type of width N.
// Generate draws uniformly in [0, size]. Shrink performs a binary
// descent: 0 first (if n != 0), then n - n/2, n - n/4, n - n/8, and so
// on, each step halving the remaining distance to n, so every candidate
// is strictly less than n and the sequence is ordered smallest-first.
func UnsignedN[T Unsigned]() Arbitrary[T] {
	return New(
		func(g rand.Gen) T {
			size := g.Size()
			if size == 0 {
				return 0
			}
			// A size beyond T's max wraps the draw back into T's range,
			// so narrow widths still see their full value space.
			return T(g.Intn(0, size+1))
		},
		unsignedShrink[T],
		func(v T) string { return fmt.Sprintf("%d", v) },
	)
}

func unsignedShrink[T Unsigned](n T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		if !yield(0) {
			return
		}
		for i := n / 2; i != 0; i /= 2 {
			if !yield(n - i) {
				return
			}
		}
	}
}

// SignedN is the catalog entry for a signed integer type of width N.
// Generate draws uniformly in [-size, size]. Shrink yields 0 first (if
// n != 0) and then, when n < 0, -n (a sign flip, simpler under this type's pre-order:
// values are ordered by absolute value first, and among equal absolute
// values the non-negative one is simpler), then performs the same binary
// descent toward n as the unsigned case, using the signed magnitude.
func SignedN[T Signed]() Arbitrary[T] {
	return New(
		func(g rand.Gen) T {
			size := g.Size()
			if size == 0 {
				return 0
			}
			n := g.Intn(-size, size+1)
			return T(n)
		},
		signedShrink[T],
		func(v T) string { return fmt.Sprintf("%d", v) },
	)
}

func signedShrink[T Signed](n T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		if !yield(0) {
			return
		}
		// The sign flip is skipped at the minimum value, where negation
		// overflows back to n itself.
		if n < 0 && -n > 0 {
			if !yield(-n) {
				return
			}
		}
		for i := n / 2; i != 0; i /= 2 {
			cand := n - i
			if !yield(cand) {
				return
			}
		}
	}
}

// Uint8, Uint16, Uint32, Uint64, Uint, Int8, Int16, Int32, Int64, Int are
// the concrete instances of the generic families above, named the way the
// stdlib names its fixed-width integer types.
func Uint8() Arbitrary[uint8]   { return UnsignedN[uint8]() }
func Uint16() Arbitrary[uint16] { return UnsignedN[uint16]() }
func Uint32() Arbitrary[uint32] { return UnsignedN[uint32]() }
func Uint64() Arbitrary[uint64] { return UnsignedN[uint64]() }
func Uint() Arbitrary[uint]     { return UnsignedN[uint]() }

func Int8() Arbitrary[int8]   { return SignedN[int8]() }
func Int16() Arbitrary[int16] { return SignedN[int16]() }
func Int32() Arbitrary[int32] { return SignedN[int32]() }
func Int64() Arbitrary[int64] { return SignedN[int64]() }
func Int() Arbitrary[int]     { return SignedN[int]() }
