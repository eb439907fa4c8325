package grid

import "sync"

// compCache holds lazily computed component labels.
type compCache struct {
	once  sync.Once
	label []int   // component id per cell index, -1 for walls
	comps [][]int // cell indices per component, in discovery order
}

// ConnectedComponents finds all contiguous regions of open cells under
// 4-connectivity. Returns a slice of components; each component is a slice
// of row-major cell indices in BFS discovery order. Components are ordered
// by their first cell in row-major order.
//
// To convert an index back to a Cell, use CellAt(idx).
//
// Time:   O(W·H·4) on first call, O(1) afterwards.
// Memory: O(W·H) for labels and output.
func (g *Grid) ConnectedComponents() [][]int {
	g.comps.once.Do(g.labelComponents)

	return g.comps.comps
}

// Connected reports whether a and b are open cells in the same component.
// This is necessary, but not sufficient, for a walker to travel between
// them: walkers cannot reverse in place.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	g.comps.once.Do(g.labelComponents)

	return g.comps.label[g.index(a)] == g.comps.label[g.index(b)]
}

// labelComponents runs one BFS per unlabelled open cell.
func (g *Grid) labelComponents() {
	total := g.width * g.height
	label := make([]int, total)
	for i := range label {
		label[i] = -1
	}
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if !g.open[i0] || label[i0] >= 0 {
			continue
		}
		id := len(comps)
		queue := []int{i0}
		label[i0] = id

		for qi := 0; qi < len(queue); qi++ {
			u := g.CellAt(queue[qi])
			for _, d := range offsets {
				v := Cell{Row: u.Row + d[0], Col: u.Col + d[1]}
				if !g.Passable(v) {
					continue
				}
				vi := g.index(v)
				if label[vi] < 0 {
					label[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	g.comps.label = label
	g.comps.comps = comps
}
