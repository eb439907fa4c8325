package grid

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Render draws the grid as text: '#' for walls, 'O' for open cells in
// marked, '.' for every other open cell. Rows are separated by '\n' with
// no trailing newline.
func (g *Grid) Render(marked mapset.Set[Cell]) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			c := Cell{Row: y, Col: x}
			switch {
			case !g.open[g.index(c)]:
				b.WriteByte(SymbolWall)
			case marked.Has(c):
				b.WriteByte(SymbolPath)
			default:
				b.WriteByte(SymbolFloor)
			}
		}
	}

	return b.String()
}

// String renders the grid with its start and goal markers.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			c := Cell{Row: y, Col: x}
			switch {
			case c == g.start:
				b.WriteByte(SymbolStart)
			case c == g.goal:
				b.WriteByte(SymbolGoal)
			case g.open[g.index(c)]:
				b.WriteByte(SymbolFloor)
			default:
				b.WriteByte(SymbolWall)
			}
		}
	}

	return b.String()
}
