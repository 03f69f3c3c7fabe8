// SPDX-License-Identifier: MIT
// Package: townmesh/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for jittered seeds.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrigin translates every generated position by o.
func WithOrigin(o r2.Point) BuilderOption {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithJitter perturbs every generated position by up to amount per axis,
// drawn from the configured RNG. Panics if amount is negative or not finite.
// Constructors report ErrNeedRandSource when jitter is set without an RNG.
func WithJitter(amount float64) BuilderOption {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		panic("builder: WithJitter(amount<0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.jitter = amount
	}
}
