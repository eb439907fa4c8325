package bestcost

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/reindeer/grid"
)

// Table maps every State of one Grid to the best cost seen so far.
// A slot holds cost+1; the zero value marks an unclaimed state.
type Table struct {
	g     *grid.Grid
	slots []atomic.Uint64
}

// New returns an empty table sized for g.
func New(g *grid.Grid) *Table {
	return &Table{
		g:     g,
		slots: make([]atomic.Uint64, g.StateCount()),
	}
}

// TryClaim offers cost for state s. It stores cost and returns true if s is
// unclaimed or its recorded cost is ≥ cost; otherwise it returns false and
// the table is unchanged. States outside the grid can never be claimed.
func (t *Table) TryClaim(s grid.State, cost uint64) bool {
	idx := t.g.StateIndex(s)
	if idx < 0 || cost == math.MaxUint64 {
		return false
	}
	slot := &t.slots[idx]
	want := cost + 1
	for {
		cur := slot.Load()
		if cur != 0 && cur < want {
			return false
		}
		if cur == want || slot.CompareAndSwap(cur, want) {
			return true
		}
	}
}

// Lookup returns the recorded cost for s and whether s was ever claimed.
func (t *Table) Lookup(s grid.State) (uint64, bool) {
	idx := t.g.StateIndex(s)
	if idx < 0 {
		return 0, false
	}
	v := t.slots[idx].Load()
	if v == 0 {
		return 0, false
	}

	return v - 1, true
}

// Best returns the lowest recorded cost over all four headings at c.
func (t *Table) Best(c grid.Cell) (uint64, bool) {
	var (
		best  uint64
		found bool
	)
	for _, d := range grid.Directions {
		v, ok := t.Lookup(grid.State{Cell: c, Facing: d})
		if ok && (!found || v < best) {
			best, found = v, true
		}
	}

	return best, found
}

// Claimed returns the number of states that hold a cost.
func (t *Table) Claimed() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].Load() != 0 {
			n++
		}
	}

	return n
}

// Each calls fn for every claimed state in dense index order
// (row-major cells, headings North, East, South, West).
func (t *Table) Each(fn func(s grid.State, cost uint64)) {
	for i := range t.slots {
		if v := t.slots[i].Load(); v != 0 {
			fn(t.g.StateAt(i), v-1)
		}
	}
}

// Len returns the capacity of the table: width × height × 4.
func (t *Table) Len() int { return len(t.slots) }
