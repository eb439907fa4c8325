package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/reindeer/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Parsing Tests
//----------------------------------------------------------------------------//

// TestFromLines_Errors verifies that malformed inputs are rejected with the
// matching sentinel error.
func TestFromLines_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"OnlyBlank", []string{"", "   ", ""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"#####", "#S.E#", "###"}, grid.ErrMalformedGrid},
		{"BlankInside", []string{"#####", "", "#S.E#"}, grid.ErrMalformedGrid},
		{"NoStart", []string{"####", "#.E#", "####"}, grid.ErrMissingMarker},
		{"NoGoal", []string{"####", "#S.#", "####"}, grid.ErrMissingMarker},
		{"TwoStarts", []string{"#####", "#SSE#", "#####"}, grid.ErrMissingMarker},
		{"TwoGoals", []string{"#####", "#SEE#", "#####"}, grid.ErrMissingMarker},
		{"UnknownSymbol", []string{"#####", "#S?E#", "#####"}, grid.ErrUnknownSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromLines(tc.lines)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromLines(%q) error = %v; want %v", tc.lines, err, tc.err)
			}
		})
	}
}

// TestFromLines_TrimsTrailingWhitespace checks that trailing blanks and
// carriage returns do not count towards the row width.
func TestFromLines_TrimsTrailingWhitespace(t *testing.T) {
	g, err := grid.FromLines([]string{"", "#####  ", "#S.E#\r", "#####\t", ""})
	require.NoError(t, err)

	w, h := g.Dimensions()
	assert.Equal(t, 5, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, grid.Cell{Row: 1, Col: 1}, g.Start())
	assert.Equal(t, grid.Cell{Row: 1, Col: 3}, g.Goal())
}

// TestParse_Reader parses the first reference maze through an io.Reader.
func TestParse_Reader(t *testing.T) {
	g, err := grid.Parse(strings.NewReader(smallMaze + "\n"))
	require.NoError(t, err)

	assert.Equal(t, 15, g.Width())
	assert.Equal(t, 15, g.Height())
	assert.False(t, g.Passable(grid.Cell{Row: 0, Col: 0}))
	assert.True(t, g.Passable(grid.Cell{Row: 1, Col: 1}))
	assert.True(t, g.Passable(grid.Cell{Row: 1, Col: 13}))
	assert.True(t, g.Passable(grid.Cell{Row: 13, Col: 1}))
	assert.Equal(t, grid.Cell{Row: 13, Col: 1}, g.Start())
	assert.Equal(t, grid.Cell{Row: 1, Col: 13}, g.Goal())
	assert.Equal(t, smallMaze, g.String())
}

//----------------------------------------------------------------------------//
// New, InBounds and index Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or marker-less input.
func TestNew_Errors(t *testing.T) {
	open := [][]bool{{true, true}, {false, true}}
	cases := []struct {
		name        string
		open        [][]bool
		start, goal grid.Cell
		err         error
	}{
		{"EmptyRows", [][]bool{}, grid.Cell{}, grid.Cell{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, grid.Cell{}, grid.Cell{}, grid.ErrEmptyGrid},
		{"Ragged", [][]bool{{true, true}, {true}}, grid.Cell{}, grid.Cell{}, grid.ErrMalformedGrid},
		{"StartOnWall", open, grid.Cell{Row: 1, Col: 0}, grid.Cell{Row: 1, Col: 1}, grid.ErrMissingMarker},
		{"GoalOutside", open, grid.Cell{}, grid.Cell{Row: 5, Col: 5}, grid.ErrMissingMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.open, tc.start, tc.goal)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_CopiesInput ensures later mutation of the source matrix does not
// leak into the Grid.
func TestNew_CopiesInput(t *testing.T) {
	open := [][]bool{{true, true, true}}
	g, err := grid.New(open, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2})
	require.NoError(t, err)

	open[0][1] = false
	assert.True(t, g.Passable(grid.Cell{Row: 0, Col: 1}))
}

// TestPassable_OutOfRange checks that nothing outside the rectangle is open.
func TestPassable_OutOfRange(t *testing.T) {
	g := grid.MustParse("S.E")

	for _, c := range []grid.Cell{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: 0, Col: 3}} {
		assert.False(t, g.InBounds(c), "InBounds(%s)", c)
		assert.False(t, g.Passable(c), "Passable(%s)", c)
		assert.Equal(t, -1, g.Index(c), "Index(%s)", c)
	}
	assert.True(t, g.Passable(grid.Cell{Row: 0, Col: 1}))
}

// TestStateIndex_RoundTrip walks every state of a small grid and checks the
// dense index is a bijection onto [0, StateCount()).
func TestStateIndex_RoundTrip(t *testing.T) {
	g := grid.MustParse("#S.\n..E")
	require.Equal(t, 3*2*4, g.StateCount())

	seen := make(map[int]bool, g.StateCount())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			for _, d := range grid.Directions {
				s := grid.State{Cell: grid.Cell{Row: y, Col: x}, Facing: d}
				idx := g.StateIndex(s)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, g.StateCount())
				require.False(t, seen[idx], "duplicate index %d for %s", idx, s)
				seen[idx] = true
				require.Equal(t, s, g.StateAt(idx))
			}
		}
	}

	assert.Equal(t, -1, g.StateIndex(grid.State{Cell: grid.Cell{Row: 0, Col: 0}, Facing: grid.Direction(7)}))
	assert.Equal(t, -1, g.StateIndex(grid.State{Cell: grid.Cell{Row: 2, Col: 0}, Facing: grid.North}))
}

// TestOpenCells counts floor, start and goal cells.
func TestOpenCells(t *testing.T) {
	g := grid.MustParse("#S.\n..E")
	assert.Equal(t, 5, g.OpenCells())
}
