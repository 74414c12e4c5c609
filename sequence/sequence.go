// Package sequence - van der Corput low-discrepancy generator.
//
// This file centralizes deterministic quasi-random generation for the
// bracket-search driver.
//
// Goals:
//   - Determinism: same base ⇒ identical stream across platforms and runs.
//   - Encapsulation: one "produce next value" operation behind Source;
//     no time-based sources hidden anywhere.
//   - Safety: no panics in steady state; only sentinel errors at construction.
//   - Performance: O(log n) per value, zero allocations after construction.
//
// Concurrency:
//   - A generator is NOT goroutine-safe. Construct one per consumer;
//     top-level searches obtain a fresh instance per call.
package sequence

import (
	"errors"
	"math/bits"
)

// ErrBadBase indicates a van der Corput base below 2.
var ErrBadBase = errors.New("sequence: base must be at least 2")

// maxBit bounds the base-2 state to the float64 mantissa, so every emitted
// value is exactly representable. The stream is exhausted only after 2^52
// draws, which is unreachable in practice.
const maxBit = 52

// base2Fac converts the reversed 52-bit index into [0,1).
const base2Fac = 1.0 / (1 << maxBit)

// Source produces the next value of an infinite deterministic sequence
// in [0,1). Implementations are single-owner cursors: one consumer,
// no sharing.
type Source interface {
	Next() float64
}

// VanDerCorput emits the van der Corput radical-inverse sequence in the
// configured base: the n-th value is the base-b digit reversal of n, read
// as a fraction. Prefixes of the stream cover [0,1) evenly — after 2^m
// base-2 draws every dyadic multiple of 2^-m has appeared exactly once.
//
// Base 2 is special-cased: digit reversal collapses to a single machine
// bit-reversal, and every value is an exact dyadic rational.
type VanDerCorput struct {
	base uint64
	n    uint64 // index of the last emitted value
}

// New returns a van der Corput generator for the given base.
// Returns ErrBadBase when base < 2.
//
// The zeroth sequence element (0) is skipped: the first Next() yields 1/base.
func New(base int) (*VanDerCorput, error) {
	if base < 2 {
		return nil, ErrBadBase
	}
	return &VanDerCorput{base: uint64(base)}, nil
}

// Base2 returns the canonical base-2 generator. It is the default stream
// for bracket searches and never fails to construct.
func Base2() *VanDerCorput {
	return &VanDerCorput{base: 2}
}

// Next returns the next sequence value in [0,1).
//
// Complexity: O(1) for base 2, O(log n) digit reversal otherwise.
func (v *VanDerCorput) Next() float64 {
	v.n++
	if v.base == 2 {
		return float64(bits.Reverse64(v.n)>>(64-maxBit)) * base2Fac
	}
	return radicalInverse(v.n, v.base)
}

// Reset restarts the stream. The next Next() replays the first value.
func (v *VanDerCorput) Reset() {
	v.n = 0
}

// Base reports the configured base.
func (v *VanDerCorput) Base() int {
	return int(v.base)
}

// radicalInverse reverses the base-b digits of n across the radix point:
// n = d0 + d1·b + d2·b² + …  ⇒  d0/b + d1/b² + d2/b³ + …
func radicalInverse(n, base uint64) float64 {
	var (
		inv float64
		f   = 1.0 / float64(base)
	)
	for ; n > 0; n /= base {
		inv += float64(n%base) * f
		f /= float64(base)
	}
	return inv
}
