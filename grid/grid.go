// Package grid provides the immutable maze the search engine walks on.
//
// Cells are either open (passable) or walls. Every coordinate outside the
// rectangle is treated as a wall, so callers never need a separate bounds
// check before asking whether a move is legal.
package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular passability matrix
// (open[row][col]) and explicit start and goal cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if open has no rows or no columns,
// ErrMalformedGrid if any row length differs, and ErrMissingMarker if
// start or goal is out of bounds or sits on a wall.
// Complexity: O(W×H) time and memory.
func New(open [][]bool, start, goal Cell) (*Grid, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(open), len(open[0])
	for y, row := range open {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), w)
		}
	}

	// Flatten to row-major order; this also detaches us from the caller's slices.
	cells := make([]bool, 0, w*h)
	for _, row := range open {
		cells = append(cells, row...)
	}
	g := &Grid{
		width:  w,
		height: h,
		open:   cells,
		start:  start,
		goal:   goal,
	}
	if !g.Passable(start) {
		return nil, fmt.Errorf("%w: start %s is not an open cell", ErrMissingMarker, start)
	}
	if !g.Passable(goal) {
		return nil, fmt.Errorf("%w: goal %s is not an open cell", ErrMissingMarker, goal)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (width, height int) { return g.width, g.height }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// Passable reports whether c is an open cell. Out-of-range cells are never
// passable.
// Complexity: O(1).
func (g *Grid) Passable(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}

	return g.open[g.index(c)]
}

// Index maps c to its row-major index Row*Width + Col, or -1 when c is
// out of range.
func (g *Grid) Index(c Cell) int {
	if !g.InBounds(c) {
		return -1
	}

	return g.index(c)
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}

// StateCount returns the number of distinct States: width × height × 4.
func (g *Grid) StateCount() int {
	return g.width * g.height * numDirections
}

// StateIndex maps s to a dense index in [0, StateCount()), or -1 when the
// cell is out of range or the heading is undefined.
func (g *Grid) StateIndex(s State) int {
	if !s.Facing.Valid() || !g.InBounds(s.Cell) {
		return -1
	}

	return g.index(s.Cell)*numDirections + int(s.Facing)
}

// StateAt converts a dense state index back to a State.
func (g *Grid) StateAt(idx int) State {
	return State{
		Cell:   g.CellAt(idx / numDirections),
		Facing: Direction(idx % numDirections),
	}
}

// OpenCells returns the number of passable cells.
func (g *Grid) OpenCells() int {
	n := 0
	for _, ok := range g.open {
		if ok {
			n++
		}
	}

	return n
}

// index maps c to a row-major index without bounds checking.
func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}
