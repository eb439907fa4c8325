package search

import (
	"github.com/katalvlaran/reindeer/grid"
	"github.com/zyedidia/generic/mapset"
)

// noTrail marks a walker whose only visited cell is its current location.
// Trail links are node index + 1, so the zero Walker has no trail.
const noTrail int32 = 0

// Walker is a single exploration agent. Cost only ever grows.
// The visited-cell set is the walker's Location plus the trail chain that
// starts at trail; use Trail.Path to materialise it.
type Walker struct {
	Location grid.Cell
	Facing   grid.Direction
	Cost     uint64

	trail int32
}

// NewWalker returns the initial walker: at start, facing StartFacing,
// cost 0, path {start}.
func NewWalker(start grid.Cell) Walker {
	return Walker{
		Location: start,
		Facing:   StartFacing,
		Cost:     0,
		trail:    noTrail,
	}
}

// State returns the (cell, facing) pair the walker occupies.
func (w Walker) State() grid.State {
	return grid.State{Cell: w.Location, Facing: w.Facing}
}

// trailNode is one visited cell; parent links to the node visited before it.
type trailNode struct {
	cell   grid.Cell
	parent int32
}

// Trail is an append-only arena of visited cells shared by all walkers of a
// run. Nodes are never modified once written, so any number of goroutines
// may read them while no append is in progress.
type Trail struct {
	nodes []trailNode
}

// NewTrail returns an empty arena with room for hint nodes.
func NewTrail(hint int) *Trail {
	return &Trail{nodes: make([]trailNode, 0, hint)}
}

// Extend records w's current location as a trail node and links every
// successor to it, so successors share w's path instead of copying it.
func (t *Trail) Extend(w Walker, successors []Walker) {
	if len(successors) == 0 {
		return
	}
	t.nodes = append(t.nodes, trailNode{cell: w.Location, parent: w.trail})
	link := int32(len(t.nodes))
	for i := range successors {
		successors[i].trail = link
	}
}

// Path returns the set of cells w has visited, its current location included.
// Complexity: O(route length).
func (t *Trail) Path(w Walker) mapset.Set[grid.Cell] {
	path := mapset.New[grid.Cell]()
	path.Put(w.Location)
	for at := w.trail; at != noTrail; at = t.nodes[at-1].parent {
		path.Put(t.nodes[at-1].cell)
	}

	return path
}

// Route returns the cells w has visited in order from the start to its
// current location. Unlike Path it keeps repeated cells.
func (t *Trail) Route(w Walker) []grid.Cell {
	var route []grid.Cell
	for at := w.trail; at != noTrail; at = t.nodes[at-1].parent {
		route = append(route, t.nodes[at-1].cell)
	}
	// reverse to get start → current
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return append(route, w.Location)
}

// Len returns the number of nodes in the arena.
func (t *Trail) Len() int { return len(t.nodes) }
