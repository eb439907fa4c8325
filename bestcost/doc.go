// Package bestcost implements the dominance table of the walker search:
// a dense map from grid.State to the lowest cost at which any walker has
// reached that state so far.
//
// The table has exactly one mutating operation, TryClaim. A claim succeeds
// when the state is unclaimed or its recorded cost is greater than or equal
// to the offered cost; the offered cost is then stored. A claim with a
// strictly higher cost fails and leaves the table untouched.
//
// Accepting equal costs is what lets several co-optimal walkers survive
// at the same state, and it makes the outcome of a round independent of the
// order in which walkers claim: two walkers with the same cost both survive
// no matter who goes first.
//
// Concurrency:
//
//   - Each slot is an atomic word updated with a compare-and-set loop, so
//     TryClaim is safe to call from many goroutines at once.
//   - Lookup, Claimed and Each are safe to call concurrently with TryClaim,
//     but only observe a stable picture once all claimers have finished.
//
// Complexity:
//
//   - New:      O(W×H×4) memory.
//   - TryClaim: O(1) expected (a CAS retry only happens under contention).
//   - Each:     O(W×H×4).
package bestcost
