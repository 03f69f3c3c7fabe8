// SPDX-License-Identifier: MIT
// Package: townmesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the method name prefix.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a count parameter (n, rows, cols, len(points))
// is smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a non-positive or non-finite geometric size
// (radius, width, height, spacing).
var ErrBadSize = errors.New("builder: invalid geometric size")

// ErrNeedRandSource indicates that a stochastic option (WithJitter) requires a
// non-nil *rand.Rand in the resolved builderConfig (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not be applied
// (nil constructor, nil graph, or a core mutation rejected the seed).
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRing, n, MinRingNodes, ErrTooFewVertices)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix.
//
// 2) Priority when several validations fail:
//    • ErrTooFewVertices — counts first.
//    • ErrBadSize        — then geometric sizes.
//    • ErrNeedRandSource — then RNG presence for jittered seeds.
//    • ErrConstructFailed — only for core rejections and programmer errors.
