package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and movement.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrMalformedGrid indicates rows of differing lengths.
	ErrMalformedGrid = errors.New("grid: all rows must have the same length")
	// ErrMissingMarker indicates a start or goal marker is absent or duplicated.
	ErrMissingMarker = errors.New("grid: exactly one start and one goal marker required")
	// ErrUnknownSymbol indicates a character that is not part of the maze alphabet.
	ErrUnknownSymbol = errors.New("grid: unknown symbol")
	// ErrInvalidTransition indicates a rotation or step with an undefined Direction.
	// It signals a bug in the caller, never a data problem.
	ErrInvalidTransition = errors.New("grid: invalid direction transition")
)

// Maze symbols.
const (
	SymbolWall  = '#'
	SymbolFloor = '.'
	SymbolStart = 'S'
	SymbolGoal  = 'E'
	SymbolPath  = 'O'
)

// Direction is one of the four compass headings, ordered clockwise.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West

	// numDirections is the size of the heading cycle.
	numDirections = 4
)

// Directions lists all headings in clockwise order starting at North.
var Directions = [numDirections]Direction{North, East, South, West}

// offsets[d] = (dRow, dCol) for a single step facing d.
var offsets = [numDirections][2]int{
	{-1, 0}, // North
	{0, 1},  // East
	{1, 0},  // South
	{0, -1}, // West
}

// Valid reports whether d is one of North, East, South or West.
func (d Direction) Valid() bool { return d < numDirections }

// TurnLeft returns d rotated 90° counter-clockwise.
func (d Direction) TurnLeft() (Direction, error) {
	if !d.Valid() {
		return d, fmt.Errorf("%w: turn left from %d", ErrInvalidTransition, uint8(d))
	}

	return (d + numDirections - 1) % numDirections, nil
}

// TurnRight returns d rotated 90° clockwise.
func (d Direction) TurnRight() (Direction, error) {
	if !d.Valid() {
		return d, fmt.Errorf("%w: turn right from %d", ErrInvalidTransition, uint8(d))
	}

	return (d + 1) % numDirections, nil
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() (Direction, error) {
	if !d.Valid() {
		return d, fmt.Errorf("%w: reverse %d", ErrInvalidTransition, uint8(d))
	}

	return (d + 2) % numDirections, nil
}

// Offset returns the (dRow, dCol) of one step facing d.
func (d Direction) Offset() (dRow, dCol int, err error) {
	if !d.Valid() {
		return 0, 0, fmt.Errorf("%w: offset of %d", ErrInvalidTransition, uint8(d))
	}

	return offsets[d][0], offsets[d][1], nil
}

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Cell is a (Row, Col) coordinate. Cells outside the grid are valid values;
// they are simply never passable.
type Cell struct {
	Row, Col int
}

// Step returns the neighbouring cell one step in direction d.
func (c Cell) Step(d Direction) (Cell, error) {
	dr, dc, err := d.Offset()
	if err != nil {
		return c, err
	}

	return Cell{Row: c.Row + dr, Col: c.Col + dc}, nil
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// State is a cell together with a heading: the unit of "same place facing
// the same way" used for memoization.
type State struct {
	Cell   Cell
	Facing Direction
}

// String formats the state as "(row,col)/Heading".
func (s State) String() string {
	return s.Cell.String() + "/" + s.Facing.String()
}

// Grid is an immutable rectangular maze. Width and Height define dimensions;
// open[idx] holds passability of the cell with row-major index idx.
// Component labels are computed once, on first use, and never change.
type Grid struct {
	width, height int
	open          []bool
	start, goal   Cell

	comps compCache
}
