package search

import (
	"fmt"

	"github.com/katalvlaran/reindeer/bestcost"
	"github.com/katalvlaran/reindeer/grid"
)

// maxSuccessors is the widest fork: forward, left and right.
const maxSuccessors = 3

// Step is the result of stepping one walker.
// Finished reports that the walker stood on the goal when it was stepped
// (and survived its claim); it is independent of Disposition.
type Step struct {
	Disposition Disposition
	Finished    bool

	succ [maxSuccessors]Walker
	n    int
}

// Successors returns the walkers produced by the step: forward first, then
// left, then right, each present only if that move was open.
func (s *Step) Successors() []Walker { return s.succ[:s.n] }

func (s *Step) add(w Walker) {
	s.succ[s.n] = w
	s.n++
}

// Stepper is the per-walker transition function. It reads the grid and
// claims states in the shared table; it holds no other state, so one
// Stepper may be used from several goroutines at once.
type Stepper struct {
	g     *grid.Grid
	table *bestcost.Table
}

// NewStepper returns a Stepper over g that prunes through table.
func NewStepper(g *grid.Grid, table *bestcost.Table) *Stepper {
	return &Stepper{g: g, table: table}
}

// Step advances w by one move.
//
//  1. Claim (w.Location, w.Facing) at w.Cost. A failed claim kills the walker.
//  2. If w stands on the goal, mark the step Finished.
//  3. Inspect front, left and right (never behind). Every open one yields a
//     successor: forward costs StepCost, a turn costs TurnCost+StepCost.
//
// Successors carry w's trail; the Engine links them to w's location.
// Returns grid.ErrInvalidTransition if w.Facing is undefined.
func (s *Stepper) Step(w Walker) (Step, error) {
	var st Step

	// Resolve headings before the claim so a broken walker never touches the table.
	left, err := w.Facing.TurnLeft()
	if err != nil {
		return st, fmt.Errorf("search: step walker at %s: %w", w.Location, err)
	}
	right, err := w.Facing.TurnRight()
	if err != nil {
		return st, fmt.Errorf("search: step walker at %s: %w", w.Location, err)
	}

	if !s.table.TryClaim(w.State(), w.Cost) {
		st.Disposition = Dead
		return st, nil
	}
	st.Finished = w.Location == s.g.Goal()

	for _, d := range [maxSuccessors]grid.Direction{w.Facing, left, right} {
		next, err := w.Location.Step(d)
		if err != nil {
			return Step{}, fmt.Errorf("search: step walker at %s: %w", w.Location, err)
		}
		if !s.g.Passable(next) {
			continue
		}
		st.add(advance(w, d, next))
	}

	switch st.n {
	case 0:
		st.Disposition = Dead
	case 1:
		st.Disposition = Continue
	default:
		st.Disposition = Fork
	}

	return st, nil
}

// advance returns w turned to d (if different) and moved onto to.
func advance(w Walker, d grid.Direction, to grid.Cell) Walker {
	if d != w.Facing {
		w.Cost += TurnCost
		w.Facing = d
	}
	w.Cost += StepCost
	w.Location = to

	return w
}
