// Package bracket locates root-isolating intervals ("brackets") of a
// continuous scalar function by distribution-driven quasi-random sampling.
//
// 🚀 What is a bracket?
//
//	An interval guaranteed to contain a root of f: either two adjacent
//	samples with opposite nonzero signs (intermediate value property),
//	or a single sample where f is exactly zero.  Brackets are the safe
//	currency of root finding — any refiner converges inside one.
//
// ✨ How the search works:
//   - Sample points z from a low-discrepancy sequence in [0,1)
//   - Map each z through a caller-supplied distribution transform into
//     the domain of f
//   - Keep all sampled (x, sign f(x)) pairs in a sorted store
//   - Maintain the number of currently detectable brackets incrementally:
//     inserting one point can split, shrink, or eliminate a previously
//     detected bracket, and the running count absorbs each change from
//     the two touched adjacencies alone — no rescan, ever
//   - Stop the moment the count reaches the requested n
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/distroots/bracket"
//
//	f := func(x float64) float64 { return x - 0.5 }
//	bs, err := bracket.Find(f, 1, nil)      // one bracket around 0.5
//	roots, err := bracket.FindRoots(f, 1, nil) // ≈ [0.5]
//
//	// bias sampling: quadratic transform concentrates points near 0
//	opts := bracket.DefaultOptions()
//	opts.Transform = func(z float64) float64 { return z * z }
//	bs, err = bracket.Find(f, 1, &opts)
//
// ⚠️ Liveness:
//
//	If the transformed image of [0,1] contains fewer than n brackets,
//	Find never returns.  This is the documented contract, not a fault:
//	callers needing a bound must impose an external limit.
//
// Complexity: O(log size) sign-change accounting per sampled point (the
// sorted keeper adds its own insertion cost); memory grows with the
// sample count until the stop condition triggers.
package bracket
