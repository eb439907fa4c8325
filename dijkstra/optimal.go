package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reindeer/grid"
	"github.com/zyedidia/generic/mapset"
)

// OptimalCells returns the minimum cost from start (facing East) to the goal
// in any heading, and the set of cells lying on at least one route of that
// cost. Cost options (WithCosts, WithMaxCost) apply to both passes; source
// and direction options are ignored.
//
// A cell c is optimal iff some state s = (c, d) satisfies
// fwd[s] + bwd[s] == best, where fwd is the forward distance from the start
// and bwd the reverse distance to the goal.
func OptimalCells(g *grid.Grid, opts ...Option) (uint64, mapset.Set[grid.Cell], error) {
	if g == nil {
		return 0, mapset.Set[grid.Cell]{}, ErrNilGrid
	}
	costOnly := func(o *Options) {
		o.Sources = nil
		o.Reverse = false
	}

	fwd, err := Dijkstra(g, append(append([]Option(nil), opts...), costOnly)...)
	if err != nil {
		return 0, mapset.Set[grid.Cell]{}, err
	}

	best := uint64(math.MaxUint64)
	for _, d := range grid.Directions {
		if v, ok := fwd[grid.State{Cell: g.Goal(), Facing: d}]; ok && v < best {
			best = v
		}
	}
	if best == math.MaxUint64 {
		return 0, mapset.Set[grid.Cell]{}, fmt.Errorf("%w: %s → %s", ErrUnreachable, g.Start(), g.Goal())
	}

	bwd, err := Dijkstra(g, append(append([]Option(nil), opts...), costOnly, WithReverse())...)
	if err != nil {
		return 0, mapset.Set[grid.Cell]{}, err
	}

	cells := mapset.New[grid.Cell]()
	for s, f := range fwd {
		if b, ok := bwd[s]; ok && f+b == best {
			cells.Put(s.Cell)
		}
	}

	return best, cells, nil
}
