package network

import (
	"log/slog"
	"math/rand"
)

// Option customizes a Builder.
type Option func(*Builder)

// WithLogger routes attempt and summary records to l. A nil l keeps the
// discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithRand draws the parent seed of each Build from r instead of
// Config.RandomSeed. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("network: WithRand(nil)")
	}
	return func(b *Builder) {
		b.rng = r
	}
}
