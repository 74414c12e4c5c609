package bracket

import "sort"

// sample is one evaluated point: domain value x and s = sign(f(x)).
// Immutable once stored; f and the transform are assumed pure.
type sample struct {
	x float64
	s int // -1, 0, +1
}

// sampleStore is a sorted, unique-keyed collection of samples together
// with the running bracket count.
//
// Invariants (hold between every pair of operations):
//   - samples is strictly increasing in x; no duplicate keys;
//   - count equals the number of brackets extractable from samples by the
//     brackets() rule — never more, never less — maintained from the two
//     adjacencies touched by each insertion, without a rescan.
//
// A store is exclusively owned by a single search activation: created
// empty, seeded, grown, consumed once, discarded. No locking.
type sampleStore struct {
	samples []sample
	count   int
}

// newStore returns an empty store with room for the two seed samples
// plus early growth.
func newStore() *sampleStore {
	return &sampleStore{samples: make([]sample, 0, 16)}
}

// insert adds (x, s) to the store, keeping the sort order and the running
// count exact. Reports whether the sample was actually added: a candidate
// whose x equals an existing key is discarded, not merged (the sequence
// may reproduce an already-seen domain value under a collapsing
// transform), and leaves the count unchanged.
//
// Count maintenance, from the touched adjacencies only:
//   - correction: if the severed neighbor pair (pred, succ) previously
//     counted as an interval bracket (both nonzero, opposite), that
//     bracket is superseded — count -= 1;
//   - s == 0 — the new point is itself a root — count += 1;
//   - s ≠ 0 opposing a nonzero predecessor sign — count += 1;
//   - s ≠ 0 opposing a nonzero successor sign — count += 1.
//
// The three additive cases contribute independently: one insertion can
// replace a lost interval bracket with up to two new ones, so the count
// may move by anything in −1..+2.
//
// Complexity: O(log size) locate + O(size) slice shift per insertion.
func (st *sampleStore) insert(x float64, s int) bool {
	// Position of the successor: first index with samples[i].x >= x.
	pos := sort.Search(len(st.samples), func(i int) bool {
		return st.samples[i].x >= x
	})

	// Duplicate key ⇒ discard, count unchanged.
	if pos < len(st.samples) && st.samples[pos].x == x {
		return false
	}

	hasPred := pos > 0
	hasSucc := pos < len(st.samples)

	var predS, succS int
	if hasPred {
		predS = st.samples[pos-1].s
	}
	if hasSucc {
		succS = st.samples[pos].s
	}

	st.samples = append(st.samples, sample{})
	copy(st.samples[pos+1:], st.samples[pos:])
	st.samples[pos] = sample{x: x, s: s}

	// Correction: the severed adjacency was an interval bracket.
	if hasPred && hasSucc && predS != 0 && predS == -succS {
		st.count--
	}

	// Recount around the new point.
	if s == 0 {
		st.count++
	} else {
		if hasPred && predS != 0 && s == -predS {
			st.count++
		}
		if hasSucc && succS != 0 && s == -succS {
			st.count++
		}
	}

	return true
}

// brackets extracts every currently detectable bracket in one forward
// pass over consecutive sample pairs, left to right. A zero sample shared
// by two consecutive pairs is emitted once: the pair that sees it as its
// right endpoint claims it, and the next pair skips its left-endpoint
// case.
//
// Produces exactly st.count brackets, pairwise disjoint, in increasing
// Lo order.
//
// Complexity: O(size).
func (st *sampleStore) brackets() []Bracket {
	out := make([]Bracket, 0, st.count)

	// Degenerate store: a collapsing transform can leave a single seed.
	if len(st.samples) == 1 {
		if only := st.samples[0]; only.s == 0 {
			out = append(out, Bracket{Lo: only.x, Hi: only.x})
		}
		return out
	}

	emitted := false // previous pair already emitted this pair's left zero
	for i := 0; i+1 < len(st.samples); i++ {
		a, b := st.samples[i], st.samples[i+1]

		if a.s == 0 && !emitted {
			out = append(out, Bracket{Lo: a.x, Hi: a.x})
		}
		emitted = false

		switch {
		case b.s == 0:
			out = append(out, Bracket{Lo: b.x, Hi: b.x})
			emitted = true
		case a.s != 0 && a.s == -b.s:
			out = append(out, Bracket{Lo: a.x, Hi: b.x})
		}
	}

	return out
}

// size reports the number of stored samples.
func (st *sampleStore) size() int {
	return len(st.samples)
}
