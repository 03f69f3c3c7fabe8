// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that the count got is ≥ min.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateSize ensures that a geometric size is finite and strictly positive.
// Complexity: O(1).
func validateSize(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s: %s=%v must be finite and > 0: %w", method, name, v, ErrBadSize)
	}

	return nil
}

// validateJitter ensures that a jittered config carries an RNG.
// Complexity: O(1).
func validateJitter(method string, cfg builderConfig) error {
	if cfg.jitter > 0 && cfg.rng == nil {
		return fmt.Errorf("%s: jitter %v needs an rng: %w", method, cfg.jitter, ErrNeedRandSource)
	}

	return nil
}
