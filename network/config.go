// SPDX-License-Identifier: MIT
// Package: townmesh/network
//
// config.go — record-style configuration with documented defaults.

package network

import (
	"fmt"
	"math"
)

// Default values applied by Config.WithDefaults to zero (or nil) fields.
const (
	DefaultMinimumEdgeLength      = 8.0
	DefaultSubdivisionProbability = 0.75
	DefaultRandomSeed             = int64(1)
	DefaultMaxAttempts            = 16
	DefaultMaxSplitsPerQuarter    = 64
	DefaultMinLotCompactness      = 0.15
)

// Config holds the recognized mesh options.
type Config struct {
	// MinimumEdgeLength is the shortest street segment a split may create.
	MinimumEdgeLength float64 `yaml:"minimumEdgeLength"`
	// SubdivisionProbability is the chance a quarter taken from the worklist
	// is cut again. Nil means DefaultSubdivisionProbability; 0 keeps the
	// seed as it is.
	SubdivisionProbability *float64 `yaml:"subdivisionProbability"`
	// RandomSeed drives every random choice; 0 means DefaultRandomSeed.
	RandomSeed int64 `yaml:"randomSeed"`
	// MaxAttempts bounds the check-and-retry loop.
	MaxAttempts int `yaml:"maxAttempts"`
	// MaxSplitsPerQuarter bounds how often the descendants of one seed
	// quarter are cut in a single attempt.
	MaxSplitsPerQuarter int `yaml:"maxSplitsPerQuarter"`
	// MinLotCompactness is the 4πA/P² below which a quarter is too thin for lots.
	MinLotCompactness float64 `yaml:"minLotCompactness"`
}

// Probability returns a pointer to p for Config.SubdivisionProbability.
func Probability(p float64) *float64 { return &p }

// WithDefaults returns a copy of c with every zero or nil field set to its
// default.
func (c Config) WithDefaults() Config {
	if c.MinimumEdgeLength == 0 {
		c.MinimumEdgeLength = DefaultMinimumEdgeLength
	}
	if c.SubdivisionProbability == nil {
		c.SubdivisionProbability = Probability(DefaultSubdivisionProbability)
	}
	if c.RandomSeed == 0 {
		c.RandomSeed = DefaultRandomSeed
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.MaxSplitsPerQuarter == 0 {
		c.MaxSplitsPerQuarter = DefaultMaxSplitsPerQuarter
	}
	if c.MinLotCompactness == 0 {
		c.MinLotCompactness = DefaultMinLotCompactness
	}
	return c
}

// Validate reports the first field outside its domain, wrapped around
// ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.MinimumEdgeLength > 0) || math.IsInf(c.MinimumEdgeLength, 0):
		return fmt.Errorf("minimumEdgeLength=%v must be finite and > 0: %w", c.MinimumEdgeLength, ErrInvalidConfig)
	case c.SubdivisionProbability != nil && !(*c.SubdivisionProbability >= 0 && *c.SubdivisionProbability <= 1):
		return fmt.Errorf("subdivisionProbability=%v outside [0,1]: %w", *c.SubdivisionProbability, ErrInvalidConfig)
	case c.MaxAttempts < 1:
		return fmt.Errorf("maxAttempts=%d < 1: %w", c.MaxAttempts, ErrInvalidConfig)
	case c.MaxSplitsPerQuarter < 0:
		return fmt.Errorf("maxSplitsPerQuarter=%d < 0: %w", c.MaxSplitsPerQuarter, ErrInvalidConfig)
	case !(c.MinLotCompactness >= 0 && c.MinLotCompactness <= 1):
		return fmt.Errorf("minLotCompactness=%v outside [0,1]: %w", c.MinLotCompactness, ErrInvalidConfig)
	}
	return nil
}
