// SPDX-License-Identifier: MIT
// Package: townmesh/partition
//
// options.go — functional options for Create.
//
// Contract:
//   • Option constructors panic on meaningless input (nil rng).
//   • Default seed is 1, so a call without options is reproducible.

package partition

import "math/rand"

// defaultSeed drives Create when no rng option is given.
const defaultSeed int64 = 1

// Option customizes Create.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithSeed seeds a fresh rng for the run.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every random choice. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("partition: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
