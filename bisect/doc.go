// Package bisect refines a root inside a sign-changing interval by
// classic interval halving.
//
// 🚀 What is bisection?
//
//	Given f continuous on [lo,hi] with sign(f(lo)) ≠ sign(f(hi)), the
//	intermediate value property guarantees a root inside.  Halving the
//	interval and keeping the half that still changes sign converges
//	unconditionally — one binary digit of the root per evaluation.
//
// ✨ Key features:
//   - unconditional convergence on any confirmed bracket
//   - exact-zero endpoints and midpoints returned immediately
//   - strict sentinel errors; a non-bracketing interval is never "repaired"
//   - no allocations, no state, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/distroots/bisect"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	root, err := bisect.Bisect(f, 1, 2, nil) // √2 to DefaultTolerance
//
// Complexity: O(log((hi−lo)/tol)) evaluations, O(1) memory.
package bisect
