// Package sequence provides deterministic low-discrepancy generators over
// the unit interval, used to drive distribution-aware sampling.
//
// 🚀 What is a low-discrepancy sequence?
//
//	A deterministic sequence in [0,1) whose prefixes cover the interval
//	far more evenly than uniform random draws.  Mapped through a
//	distribution transform, it concentrates samples exactly where the
//	target distribution puts its mass.  Typical uses:
//	  • Quasi-Monte-Carlo integration
//	  • Root and feature search over a weighted domain
//	  • Stratified parameter sweeps
//
// ✨ Key features:
//   - van der Corput generator for any base ≥ 2
//   - base 2 collapses to a single machine bit-reversal, emitting exact
//     dyadic rationals
//   - restartable: Reset() replays the identical stream from the start
//   - no time-based seeding anywhere; construction alone fixes the stream
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/distroots/sequence"
//
//	src := sequence.Base2()         // canonical default
//	z0 := src.Next()                // 0.5
//	z1 := src.Next()                // 0.25
//	z2 := src.Next()                // 0.75
//
//	h, err := sequence.New(3)       // base-3 van der Corput (Halton axis)
//
// Concurrency:
//
//	A generator is a single mutable cursor and is NOT safe for concurrent
//	use.  Give each consumer its own instance; construction is cheap.
//
// Complexity: O(log n) per value (bit/digit scan), O(1) memory.
package sequence
