// Package network - RNG utilities for the attempt loop.
//
// Every attempt owns an independent deterministic stream derived from the
// parent seed and the attempt number, so a rejected attempt never shifts the
// choices of the next one.
package network

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// attemptRNG returns the stream for attempt k.
func attemptRNG(parent int64, k int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(k))))
}
