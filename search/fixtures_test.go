package search_test

import (
	"cmp"
	"slices"
	"strings"

	"github.com/katalvlaran/reindeer/grid"
	"github.com/zyedidia/generic/mapset"
)

// smallMaze: 15×15, S at (13,1), E at (1,13). Minimum cost 7036, 45 optimal cells.
const smallMaze = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############`

// branchyMaze: 17×17 with more branching corridors. Minimum cost 11048, 64 optimal cells.
const branchyMaze = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################`

// openRoom returns an n×n room of floor inside a wall border with S in the
// bottom-left and E in the top-right corner. The only optimal route runs
// East along the bottom row, turns once and runs North: cost 1000+2(n-1),
// 2n-1 cells.
func openRoom(n int) *grid.Grid {
	lines := make([]string, 0, n+2)
	lines = append(lines, strings.Repeat("#", n+2))
	for y := 0; y < n; y++ {
		row := []byte("#" + strings.Repeat(".", n) + "#")
		if y == 0 {
			row[n] = grid.SymbolGoal
		}
		if y == n-1 {
			row[1] = grid.SymbolStart
		}
		lines = append(lines, string(row))
	}
	lines = append(lines, strings.Repeat("#", n+2))

	g, err := grid.FromLines(lines)
	if err != nil {
		panic(err)
	}

	return g
}

// sortedCells flattens a cell set into row-major order for comparisons.
func sortedCells(s mapset.Set[grid.Cell]) []grid.Cell {
	out := make([]grid.Cell, 0, s.Size())
	s.Each(func(c grid.Cell) { out = append(out, c) })
	slices.SortFunc(out, func(a, b grid.Cell) int {
		if a.Row != b.Row {
			return cmp.Compare(a.Row, b.Row)
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return out
}
