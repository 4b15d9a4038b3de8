package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the cost DefaultWeightFn assigns to every edge.
const DefaultEdgeWeight int64 = 1

// WeightFn produces a non-negative edge cost from the builder's RNG.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 { return DefaultEdgeWeight }

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be >= 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi].
// Panics unless 0 <= lo <= hi. A nil rng yields lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 <= lo <= hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}
