package bracket

// Test-Bridge (White-Box) for the sample store.
//
// Purpose:
//   - Expose the unexported sampleStore to bracket_test ONLY, so the
//     running-count invariant can be checked after every single insertion
//     without widening the prod API.
//
// Provided Surface:
//   - Store_TestOnly: alias of sampleStore with thin pass-through wrappers.
//
// Risks & Maintenance:
//   - Keep wrappers in sync with sampleStore methods; tests catch drift.

// Store_TestOnly aliases the private store for white-box tests.
type Store_TestOnly = sampleStore

// NewStore_TestOnly forwards to the private constructor.
func NewStore_TestOnly() *Store_TestOnly {
	return newStore()
}

// Insert_TestOnly forwards to sampleStore.insert.
func (st *sampleStore) Insert_TestOnly(x float64, s int) bool {
	return st.insert(x, s)
}

// Count_TestOnly reports the running bracket count.
func (st *sampleStore) Count_TestOnly() int {
	return st.count
}

// Size_TestOnly reports the number of stored samples.
func (st *sampleStore) Size_TestOnly() int {
	return st.size()
}

// Brackets_TestOnly forwards to sampleStore.brackets.
func (st *sampleStore) Brackets_TestOnly() []Bracket {
	return st.brackets()
}

// SignOf_TestOnly forwards to the private sign classifier.
func SignOf_TestOnly(v float64) int {
	return signOf(v)
}
