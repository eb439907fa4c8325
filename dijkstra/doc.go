// Package dijkstra provides a reference shortest-path solver over the
// (cell, facing) state space of a grid.Grid, independent of the walker
// search in package search.
//
// Overview:
//
//   - A state is a cell together with the heading a walker arrived with.
//   - From state (c, d) there are at most three edges, one per open
//     neighbour that does not require reversing:
//     forward to (c+d, d) with weight StepCost,
//     left to (c+left(d), left(d)) and right to (c+right(d), right(d)),
//     each with weight TurnCost+StepCost.
//   - Dijkstra computes the minimum cost of every state reachable from the
//     sources (by default the start cell facing East) using a min-heap.
//   - WithReverse runs the same search on the transposed graph from the goal
//     states, giving the minimum remaining cost from every state to the goal.
//   - OptimalCells combines both passes: a cell lies on a minimum-cost route
//     iff some state s on it has fwd[s] + bwd[s] == best.
//
// When to use:
//
//   - To cross-check the walker engine (dominance table contents, optimal
//     cells) on arbitrary grids.
//   - As an independent answer path when a single minimum cost is needed.
//
// Performance and complexity:
//
//   - Time:  O(S log S) where S = W×H×4; every state has at most 3 edges.
//   - Space: O(S) for the distance slice, visited flags and heap entries
//     under the "lazy decrease-key" strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:        a nil *grid.Grid was passed.
//   - ErrBadSource:      a source state is off-grid, on a wall or has an
//     undefined heading.
//   - ErrUnreachable:    OptimalCells found no route to the goal.
//   - ErrOptionViolation: a cost option is zero.
//
// API reference:
//
//	func Dijkstra(g *grid.Grid, opts ...Option) (map[grid.State]uint64, error)
//	func OptimalCells(g *grid.Grid, opts ...Option) (uint64, mapset.Set[grid.Cell], error)
//
//	  - opts: zero or more functional options, including:
//	      • WithSources(states...):  override the default start state.
//	      • WithReverse():           search the transposed graph from the goal.
//	      • WithMaxCost(uint64):     do not settle states beyond this cost.
//	      • WithCosts(step, turn):   override the cost model (defaults 1, 1000).
//	  - dist: minimum cost per reached state; unreached states are absent.
//
// Thread safety:
//
//   - A Grid is immutable, so concurrent calls on the same Grid are safe.
package dijkstra
