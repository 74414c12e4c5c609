package bracket

import (
	"fmt"
	"math"

	"github.com/katalvlaran/distroots/bisect"
	"github.com/katalvlaran/distroots/sequence"
)

// Find — distribution-driven bracket search.
//
// Description:
//
//	Find locates n root-isolating brackets of f. It seeds the sample
//	store with the two domain endpoints transform(0) and transform(1),
//	then draws positions from a fresh low-discrepancy stream, maps each
//	through the transform, and inserts the resulting (x, sign f(x))
//	sample into the sorted store. The store maintains the number of
//	currently detectable brackets incrementally; sampling stops the
//	moment that count reaches n, and a single forward pass extracts the
//	brackets.
//
// Algorithm Outline:
//  1. n ≤ 0 ⇒ return an empty result immediately, nothing evaluated.
//  2. Seed: insert (transform(0), sign f) and (transform(1), sign f).
//  3. While count < n: z = source.Next(); insert (transform(z), sign f).
//     Duplicate domain values are discarded. Each insertion updates the
//     count from its two touched adjacencies alone (see sampleStore).
//  4. Extract all brackets in order; return the first n.
//
// Contracts:
//   - f must be non-nil and continuous over the transformed image of [0,1];
//     the transform must be defined at 0 and 1.
//   - Results: exactly n brackets, Lo ≤ Hi, pairwise disjoint, sorted by Lo.
//   - Determinism: identical f, n and options yield identical brackets.
//
// Liveness:
//
//	If the image contains fewer than n brackets, Find never returns.
//	Documented contract: callers needing a bound must impose an external
//	limit. No internal cap exists.
//
// Complexity:
//
//	O(log size) locate plus O(size) slice shift per sampled point;
//	bracket accounting itself is O(1). Memory O(samples taken).
//
// Errors: ErrNilFunc, ErrNonFiniteSample.
func Find(f Func, n int, opts *Options) ([]Bracket, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if n <= 0 {
		return nil, nil
	}

	transform, newSource, _ := applyDefaults(opts)

	st := newStore()

	// Seed the two domain endpoints; they are placed explicitly and never
	// drawn from the stream (the stream covers the open interval only).
	for _, z := range [2]float64{0, 1} {
		x, s, err := evaluate(f, transform, z)
		if err != nil {
			return nil, err
		}
		st.insert(x, s)
	}

	src := newSource()
	for st.count < n {
		x, s, err := evaluate(f, transform, src.Next())
		if err != nil {
			return nil, err
		}
		st.insert(x, s)
	}

	// The last insertion can add two brackets at once, so the store may
	// hold n+1; the contract is exactly n.
	bs := st.brackets()
	return bs[:n], nil
}

// FindRoots — bracket search plus per-bracket refinement.
//
// Description:
//
//	FindRoots runs Find and resolves each bracket to a root value: a
//	point bracket is its own root; an interval bracket is handed to the
//	refiner (opts.Refine, or bisection by default) together with f.
//
// Contracts:
//   - Results: exactly n roots, in increasing bracket order.
//   - A refinement failure is fatal and propagated wrapped in ErrRefine;
//     no retry, no partial result. Unreachable with the stock refiner,
//     since every delivered bracket is confirmed.
//
// Errors: ErrNilFunc, ErrNonFiniteSample, ErrRefine.
func FindRoots(f Func, n int, opts *Options) ([]float64, error) {
	bs, err := Find(f, n, opts)
	if err != nil {
		return nil, err
	}
	if len(bs) == 0 {
		return nil, nil
	}

	_, _, refine := applyDefaults(opts)

	roots := make([]float64, len(bs))
	for i, b := range bs {
		if b.IsPoint() {
			roots[i] = b.Lo
			continue
		}
		r, rerr := refine(f, b.Lo, b.Hi)
		if rerr != nil {
			return nil, fmt.Errorf("%w on [%g, %g]: %w", ErrRefine, b.Lo, b.Hi, rerr)
		}
		roots[i] = r
	}

	return roots, nil
}

// applyDefaults resolves nil option fields to the documented defaults.
func applyDefaults(opts *Options) (Transform, func() sequence.Source, Refiner) {
	transform := identity
	newSource := defaultSource
	refine := bisectRefine
	if opts != nil {
		if opts.Transform != nil {
			transform = opts.Transform
		}
		if opts.NewSource != nil {
			newSource = opts.NewSource
		}
		if opts.Refine != nil {
			refine = opts.Refine
		}
	}
	return transform, newSource, refine
}

// evaluate composes the transform and f at one stream position:
// x = transform(z), s = sign(f(x)). Stateless; NaN from either step is
// fatal (a sign cannot be assigned).
func evaluate(f Func, transform Transform, z float64) (x float64, s int, err error) {
	x = transform(z)
	if math.IsNaN(x) {
		return 0, 0, ErrNonFiniteSample
	}
	fx := f(x)
	if math.IsNaN(fx) {
		return 0, 0, ErrNonFiniteSample
	}
	return x, signOf(fx), nil
}

// signOf maps a non-NaN value to {-1, 0, +1}.
func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// identity is the default transform: sample the domain [0,1] directly.
func identity(z float64) float64 {
	return z
}

// defaultSource starts a fresh base-2 van der Corput stream.
func defaultSource() sequence.Source {
	return sequence.Base2()
}

// bisectRefine is the stock refiner: bisection at default tolerance.
func bisectRefine(f Func, lo, hi float64) (float64, error) {
	return bisect.Bisect(f, lo, hi, nil)
}
