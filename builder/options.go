// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options resolved into an immutable builderConfig.
// Policy:
//   - Option constructors validate and panic on nil input.
//   - Seeding is explicit through WithSeed; the default seed is fixed.

package builder

import (
	"math/rand"
	"strconv"
)

// DefaultSeed seeds the RNG when WithSeed is not supplied.
const DefaultSeed int64 = 1

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	idFn     func(int) string
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		weightFn: DefaultWeightFn,
		idFn:     strconv.Itoa,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed freezes the RNG used by weight functions and RandomSparse.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge-cost generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithIDScheme sets the vertex ID generator used by Path, Cycle and RandomSparse.
// Grid keeps its fixed "r,c" scheme.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// SymbolID maps 0..25 to "A".."Z" and larger indices to "A26", "A27", ...
func SymbolID(i int) string {
	if i >= 0 && i < 26 {
		return string(rune('A' + i))
	}

	return "A" + strconv.Itoa(i)
}
