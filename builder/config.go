// SPDX-License-Identifier: MIT
// Package: townmesh/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn    = DefaultIDFn   ("0","1","2",...)
//   • rng     = nil           (pure/deterministic unless seeded)
//   • origin  = (0,0)
//   • jitter  = 0             (exact positions)
//   • scope   = ""            (fixed IDs used verbatim)

package builder

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Translation applied to every generated position.
	origin r2.Point
	// Max per-axis perturbation of generated positions; 0 disables.
	jitter float64
	// Prefix for fixed IDs (CenterVertexID); set by Scoped.
	scope string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		origin: r2.Point{},
		jitter: 0,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place translates p by the configured origin and, when jitter is enabled,
// perturbs each axis uniformly in [-jitter, +jitter].
// Callers validate jitter/rng with validateJitter beforehand.
func (cfg builderConfig) place(p r2.Point) r2.Point {
	p = p.Add(cfg.origin)
	if cfg.jitter > 0 && cfg.rng != nil {
		p.X += (cfg.rng.Float64()*2 - 1) * cfg.jitter
		p.Y += (cfg.rng.Float64()*2 - 1) * cfg.jitter
	}
	return p
}
