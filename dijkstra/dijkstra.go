// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// (cell, facing) state graph of a maze.
//
// Notes on implementation choices:
//
//   - States are addressed by grid.StateIndex, so dist / visited are dense
//     slices rather than maps; only the result is returned as a map.
//   - Edges are never materialised: relax derives the (at most three)
//     neighbours of a state from the grid on the fly.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/reindeer/grid"
)

// Dijkstra computes the minimum cost of every state reachable from the
// sources in g. It accepts functional options to customise behaviour
// (WithSources, WithReverse, WithMaxCost, WithCosts).
//
// Returns:
//
//   - dist: map from state to minimum cost. Unreached states are absent.
//   - err:  error if inputs or options are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. options must be valid (ErrOptionViolation).
//  3. every source must be an open cell with a defined heading (ErrBadSource).
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4
//   - Space: O(S)
func Dijkstra(g *grid.Grid, opts ...Option) (map[grid.State]uint64, error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Default sources depend on direction of travel.
	sources := cfg.Sources
	if sources == nil {
		if cfg.Reverse {
			for _, d := range grid.Directions {
				sources = append(sources, grid.State{Cell: g.Goal(), Facing: d})
			}
		} else {
			sources = []grid.State{{Cell: g.Start(), Facing: grid.East}}
		}
	}
	for _, s := range sources {
		if g.StateIndex(s) < 0 || !g.Passable(s.Cell) {
			return nil, fmt.Errorf("%w: %s", ErrBadSource, s)
		}
	}

	// 4) Prepare data structures and run.
	n := g.StateCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]uint64, n),
		visited: make([]bool, n),
		pq:      make(statePQ, 0, len(sources)),
	}
	r.init(sources)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Export reached states only.
	out := make(map[grid.State]uint64)
	for i, ok := range r.visited {
		if ok {
			out[g.StateAt(i)] = r.dist[i]
		}
	}

	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid // The input grid; read-only within Dijkstra.
	options Options    // Configuration options.
	dist    []uint64   // State index → current best cost.
	visited []bool     // State index → cost is final.
	pq      statePQ    // Min-heap for lazy priority queue.
}

// init sets every distance to +∞ and pushes every source with cost 0.
func (r *runner) init(sources []grid.State) {
	for i := range r.dist {
		r.dist[i] = math.MaxUint64
	}
	heap.Init(&r.pq)
	for _, s := range sources {
		idx := r.g.StateIndex(s)
		r.dist[idx] = 0
		heap.Push(&r.pq, &stateItem{idx: idx, dist: 0})
	}
}

// process repeatedly extracts the state with the minimum cost and relaxes
// its edges, until the heap is empty or the next cost exceeds MaxCost.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		if r.visited[item.idx] {
			continue // stale heap entry
		}
		if item.dist > r.options.MaxCost {
			break
		}
		r.visited[item.idx] = true
		if err := r.relax(item.idx); err != nil {
			return err
		}
	}

	return nil
}

// relax examines the neighbours of state u and improves their costs.
// Forward mode follows the walker's moves; reverse mode follows them
// backwards (predecessors of u).
func (r *runner) relax(u int) error {
	s := r.g.StateAt(u)
	edges, err := r.neighbours(s)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbours of %s: %w", s, err)
	}

	for _, e := range edges[:] {
		if e.w == 0 {
			continue // unused slot
		}
		v := r.g.StateIndex(e.to)
		newDist := r.dist[u] + e.w
		if newDist > r.options.MaxCost || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		heap.Push(&r.pq, &stateItem{idx: v, dist: newDist})
	}

	return nil
}

// edge is one weighted transition; w == 0 marks an absent edge.
type edge struct {
	to grid.State
	w  uint64
}

// neighbours returns up to three edges out of s (or into s when reversed).
func (r *runner) neighbours(s grid.State) ([3]edge, error) {
	var out [3]edge
	left, err := s.Facing.TurnLeft()
	if err != nil {
		return out, err
	}
	right, err := s.Facing.TurnRight()
	if err != nil {
		return out, err
	}
	turn := r.options.TurnCost + r.options.StepCost

	if !r.options.Reverse {
		// (c, d) → (c+d', d') for d' in {d, left, right}
		for i, d := range [3]grid.Direction{s.Facing, left, right} {
			next, err := s.Cell.Step(d)
			if err != nil {
				return out, err
			}
			if !r.g.Passable(next) {
				continue
			}
			w := r.options.StepCost
			if i > 0 {
				w = turn
			}
			out[i] = edge{to: grid.State{Cell: next, Facing: d}, w: w}
		}

		return out, nil
	}

	// Reverse: predecessors of (c, d) sit at c-d facing d, right(d) or left(d),
	// since turning left from right(d) (or right from left(d)) yields d.
	back, err := s.Facing.Reverse()
	if err != nil {
		return out, err
	}
	prev, err := s.Cell.Step(back)
	if err != nil {
		return out, err
	}
	if !r.g.Passable(prev) {
		return out, nil
	}
	for i, d := range [3]grid.Direction{s.Facing, right, left} {
		w := r.options.StepCost
		if i > 0 {
			w = turn
		}
		out[i] = edge{to: grid.State{Cell: prev, Facing: d}, w: w}
	}

	return out, nil
}

// stateItem represents a state index and its current cost from the sources.
type stateItem struct {
	idx  int
	dist uint64
}

// statePQ is a min-heap of *stateItem ordered by dist ascending, with
// lazy-decrease-key: outdated entries stay and are skipped when popped.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
