// Package distroots locates roots of a continuous scalar function by
// quasi-random sampling driven by a caller-chosen distribution.
//
// 🚀 What is distroots?
//
//	A small, deterministic library that finds a requested number of
//	root-isolating intervals ("brackets") of f by:
//		• Drawing points from a low-discrepancy sequence in [0,1)
//		• Mapping them through a distribution transform into f's domain
//		• Tracking sign changes incrementally among the sorted samples
//		• Refining each confirmed bracket down to a root value
//
// ✨ Why choose distroots?
//
//   - Deterministic – no time-based randomness anywhere; same inputs
//     yield the same brackets, every run
//   - Distribution-aware – the transform biases sampling toward the
//     regions you care about
//   - Incremental – a running bracket count, maintained without any
//     rescan per sample, stops the search the moment enough brackets exist
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	sequence/ — restartable low-discrepancy generators (van der Corput)
//	bracket/  — sample store, incremental bracket counting, Find/FindRoots
//	bisect/   — the stock bisection refiner used for non-degenerate brackets
//
// Quick ASCII example:
//
//	 +          ╱╲
//	  ─────●───●──●────  two sign changes ⇒ two brackets ⇒ two roots
//	 −    ╱     ╲
//
// Dive into the per-package doc.go files and examples/ for full
// walkthroughs.
//
//	go get github.com/katalvlaran/distroots
package distroots
