// Package bracket defines core types and configuration options for
// distribution-driven bracket search.
//
// The search composes three collaborators, each replaceable through
// Options:
//
//	sequence.Source — deterministic producer of sample positions in [0,1)
//	Transform       — maps [0,1] onto the domain of f, inducing the
//	                  effective sampling distribution
//	Refiner         — external solver that turns a confirmed bracket
//	                  into a root value
//
// All defaults are deterministic: no time-based randomness anywhere.
package bracket

import (
	"errors"

	"github.com/katalvlaran/distroots/sequence"
)

var (
	// ErrNilFunc indicates a nil function was supplied to Find or FindRoots.
	ErrNilFunc = errors.New("bracket: f must be non-nil")

	// ErrNonFiniteSample indicates f or the transform produced NaN at a
	// sampled point. A sign cannot be assigned to NaN, so the search
	// aborts rather than mis-classify the sample. ±Inf keeps a
	// well-defined sign and is allowed.
	ErrNonFiniteSample = errors.New("bracket: f or transform produced NaN at a sampled point")

	// ErrRefine wraps a refinement failure on a delivered bracket.
	// Structurally unreachable with the stock refiner — every delivered
	// bracket has opposite-sign or exact-zero endpoints — but never
	// silently suppressed.
	ErrRefine = errors.New("bracket: refinement failed")
)

// Func is the scalar function under search. It must be continuous over
// the transformed image of [0,1] and pure: the same x always yields the
// same value.
type Func func(x float64) float64

// Transform maps a unit-interval position z ∈ [0,1] to a domain value of
// f. It must be defined at 0 and 1 (the two seed points) and pure.
// The induced pushforward of the uniform measure on [0,1] is the
// effective sampling distribution over the domain.
type Transform func(z float64) float64

// Refiner turns a confirmed sign-changing interval [lo,hi] of f into a
// root value. The stock refiner is bisect.Bisect.
type Refiner func(f Func, lo, hi float64) (float64, error)

// Bracket is a root-isolating interval of f, Lo ≤ Hi.
//
// Two shapes occur:
//   - point bracket:    Lo == Hi and f(Lo) == 0 exactly;
//   - interval bracket: Lo < Hi with sign(f(Lo)) == -sign(f(Hi)), both
//     nonzero.
//
// Brackets returned by Find are pairwise disjoint and sorted by Lo.
type Bracket struct {
	Lo, Hi float64
}

// IsPoint reports whether b is a degenerate (exact-zero) bracket.
func (b Bracket) IsPoint() bool {
	return b.Lo == b.Hi
}

// Options configures Find and FindRoots. The zero value (and nil) selects
// all defaults; every field is independent.
//
// Fields:
//   - Transform — distribution transform; nil ⇒ identity on [0,1].
//   - NewSource — factory for the low-discrepancy stream; nil ⇒ a fresh
//     base-2 van der Corput generator. A factory rather than an instance:
//     every top-level call must own a fresh stream so repeated or
//     interleaved calls never share iteration state.
//   - Refine    — root refiner for non-degenerate brackets; nil ⇒
//     bisect.Bisect with its default tolerance.
type Options struct {
	Transform Transform
	NewSource func() sequence.Source
	Refine    Refiner
}

// DefaultOptions returns the documented default configuration: identity
// transform, fresh base-2 van der Corput stream per call, bisection
// refinement.
func DefaultOptions() Options {
	return Options{}
}
