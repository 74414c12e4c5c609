package bisect

import (
	"errors"
	"math"
)

var (
	// ErrNoSignChange indicates the interval endpoints carry equal nonzero signs.
	ErrNoSignChange = errors.New("bisect: f must change sign over [lo, hi]")
	// ErrBadInterval indicates lo > hi or a non-finite endpoint.
	ErrBadInterval = errors.New("bisect: interval must satisfy lo <= hi with finite endpoints")
	// ErrNotFinite indicates f produced NaN at an evaluated point.
	ErrNotFinite = errors.New("bisect: f produced NaN")
	// ErrMaxIterations indicates the iteration cap was hit before the
	// tolerance was met. Unreachable with default options: 200 halvings
	// shrink any float64 interval to machine resolution.
	ErrMaxIterations = errors.New("bisect: maximum iterations exceeded")
)

const (
	// DefaultTolerance is the absolute interval width at which halving stops.
	DefaultTolerance = 1e-12

	// DefaultMaxIter caps the number of halvings.
	DefaultMaxIter = 200
)

// Options configures Bisect.
//
// Fields:
//   - Tolerance — absolute width at which the interval is considered
//     resolved; must be > 0.
//   - MaxIter   — hard cap on halvings; must be > 0.
type Options struct {
	Tolerance float64
	MaxIter   int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter}
}

// Bisect — root refinement by interval halving.
//
// Description:
//
//	Bisect locates a root of f inside [lo, hi], which must either change
//	sign between its endpoints or carry an exact zero at one of them.
//	Each step evaluates the midpoint and keeps the half whose endpoints
//	still differ in sign, until the interval width drops to opts.Tolerance
//	or the midpoint can no longer be distinguished from an endpoint.
//
// Contracts:
//   - lo ≤ hi, both finite (ErrBadInterval otherwise).
//   - sign(f(lo)) ≠ sign(f(hi)), or one endpoint is an exact zero
//     (ErrNoSignChange otherwise).
//   - f returning NaN at any evaluated point is fatal (ErrNotFinite).
//
// Complexity:
//
//	Time   = O(log((hi−lo)/Tolerance)) evaluations of f
//	Memory = O(1)
//
// Errors: ErrBadInterval, ErrNoSignChange, ErrNotFinite, ErrMaxIterations.
func Bisect(f func(float64) float64, lo, hi float64, opts *Options) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return 0, ErrBadInterval
	}

	// Apply options or defaults.
	tol := DefaultTolerance
	maxIter := DefaultMaxIter
	if opts != nil {
		if opts.Tolerance > 0 {
			tol = opts.Tolerance
		}
		if opts.MaxIter > 0 {
			maxIter = opts.MaxIter
		}
	}

	flo := f(lo)
	if math.IsNaN(flo) {
		return 0, ErrNotFinite
	}
	if flo == 0 {
		return lo, nil
	}
	fhi := f(hi)
	if math.IsNaN(fhi) {
		return 0, ErrNotFinite
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, ErrNoSignChange
	}

	for iter := 0; iter < maxIter; iter++ {
		mid := lo + (hi-lo)/2
		// Machine resolution reached: no representable point strictly inside.
		if mid == lo || mid == hi {
			return mid, nil
		}

		fmid := f(mid)
		if math.IsNaN(fmid) {
			return 0, ErrNotFinite
		}
		if fmid == 0 {
			return mid, nil
		}

		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}

		if hi-lo <= tol {
			return lo + (hi-lo)/2, nil
		}
	}

	return 0, ErrMaxIterations
}
