// Package random provides the injectable source of randomness used when a
// container regenerates its contents.
package random

import (
	"math"
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the containers draw from. Tests supply a
// seeded *rand.Rand to get reproducible output.
type Source interface {
	Int63n(n int64) int64
	Uint64() uint64
}

// New returns a Source seeded from the current time.
func New() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeeded returns a deterministic Source.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Between returns a uniform sample from [min(lo, hi), max(lo, hi)] inclusive.
func Between(src Source, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	// Computed unsigned so that spans wider than MaxInt64 don't overflow.
	span := uint64(int64(hi) - int64(lo))

	if span < math.MaxInt64 {
		return int(int64(lo) + src.Int63n(int64(span)+1))
	}

	// The span covers (nearly) the whole int64 range; reject samples
	// outside of it.
	for {
		v := src.Uint64()
		if v <= span {
			return int(int64(lo) + int64(v))
		}
	}
}

// Fill returns count samples drawn with Between. A negative count yields an
// empty slice.
func Fill(src Source, count, lo, hi int) []int {
	if count < 0 {
		count = 0
	}

	out := make([]int, count)
	for i := range out {
		out[i] = Between(src, lo, hi)
	}

	return out
}
