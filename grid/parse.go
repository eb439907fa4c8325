package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a maze in text form from r and builds a Grid.
// See FromLines for the accepted format.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	// Real puzzle inputs are ~141 columns; allow far wider rows than bufio's default.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}

	return FromLines(lines)
}

// FromLines builds a Grid from rows of maze symbols:
//
//	'#' wall, '.' open floor, 'S' start (exactly one), 'E' goal (exactly one).
//
// Trailing whitespace on every line is trimmed and blank lines before the
// first and after the last row are ignored. A blank line between rows is a
// zero-width row and fails the width check.
//
// Errors: ErrEmptyGrid, ErrMalformedGrid, ErrUnknownSymbol, ErrMissingMarker.
func FromLines(lines []string) (*Grid, error) {
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, strings.TrimRight(l, " \t\r"))
	}
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	var (
		open          = make([][]bool, len(rows))
		start, goal   Cell
		starts, goals int
	)
	for y, line := range rows {
		open[y] = make([]bool, 0, len(line))
		for x, ch := range []byte(line) {
			switch ch {
			case SymbolWall:
				open[y] = append(open[y], false)
			case SymbolFloor:
				open[y] = append(open[y], true)
			case SymbolStart:
				start = Cell{Row: y, Col: x}
				starts++
				open[y] = append(open[y], true)
			case SymbolGoal:
				goal = Cell{Row: y, Col: x}
				goals++
				open[y] = append(open[y], true)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, ch, y, x)
			}
		}
	}

	// Shape errors take priority over marker errors.
	if len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for y, row := range open {
		if len(row) != len(open[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), len(open[0]))
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d start markers", ErrMissingMarker, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("%w: found %d goal markers", ErrMissingMarker, goals)
	}

	return New(open, start, goal)
}

// MustParse is like FromLines over a single newline-separated string but
// panics on error. Intended for tests and fixed fixtures.
func MustParse(text string) *Grid {
	g, err := FromLines(strings.Split(text, "\n"))
	if err != nil {
		panic(err)
	}

	return g
}
