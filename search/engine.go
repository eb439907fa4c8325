package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/reindeer/bestcost"
	"github.com/katalvlaran/reindeer/grid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"
)

// minParallelBatch is the smallest population worth splitting across workers.
const minParallelBatch = 64

// Engine orchestrates synchronous rounds of walkers over one Grid.
// The dominance table, trail arena and finisher list belong to the Engine
// and are rebuilt by every Run, so an Engine may be run repeatedly.
// An Engine is not safe for concurrent calls to Run.
type Engine struct {
	g    *grid.Grid
	opts Options

	table     *bestcost.Table
	stepper   *Stepper
	trail     *Trail
	finishers []Finisher
	steps     []Step // reused per round
}

// New validates g and opts and returns an idle Engine.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. every option must be in range (ErrOptionViolation).
func New(g *grid.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Engine{g: g, opts: cfg}, nil
}

// Solve is shorthand for New followed by Run.
func Solve(ctx context.Context, g *grid.Grid, opts ...Option) (*Result, error) {
	e, err := New(g, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run(ctx)
}

// Run searches from the start cell until no walker remains and returns the
// minimum cost together with the union of all optimal paths.
//
// Returns ErrUnreachableGoal if start and goal lie in different regions or
// if every walker died before reaching the goal, ErrRoundLimit if the
// round cap is hit, and ctx.Err() (wrapped) if ctx is cancelled between
// rounds.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	log := e.opts.Logger.WithFields(logrus.Fields{
		"start": e.g.Start().String(),
		"goal":  e.g.Goal().String(),
	})

	// 1) Connectivity is necessary for any route; fail fast without a single round.
	if !e.g.Connected(e.g.Start(), e.g.Goal()) {
		log.Debug("start and goal lie in different regions")
		return nil, fmt.Errorf("%w: start %s and goal %s are not connected",
			ErrUnreachableGoal, e.g.Start(), e.g.Goal())
	}

	// 2) Fresh per-run state.
	e.table = bestcost.New(e.g)
	e.stepper = NewStepper(e.g, e.table)
	e.trail = NewTrail(e.g.OpenCells())
	e.finishers = e.finishers[:0]

	active := []Walker{NewWalker(e.g.Start())}
	var next []Walker
	rounds := 0

	// 3) Running: step the whole population, then swap in the successors.
	for len(active) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("search: cancelled after %d rounds: %w", rounds, err)
		}
		if e.opts.MaxRounds > 0 && rounds >= e.opts.MaxRounds {
			return nil, fmt.Errorf("%w: %d rounds, %d walkers still active",
				ErrRoundLimit, rounds, len(active))
		}

		steps, err := e.stepRound(ctx, active)
		if err != nil {
			return nil, err
		}

		next = next[:0]
		for i := range steps {
			st := &steps[i]
			w := active[i]
			if st.Finished {
				e.finishers = append(e.finishers, Finisher{Cost: w.Cost, Path: e.trail.Path(w)})
			}
			succ := st.Successors()
			e.trail.Extend(w, succ)
			next = append(next, succ...)
		}
		rounds++

		e.opts.OnRound(rounds, len(next))
		log.WithFields(logrus.Fields{
			"round":     rounds,
			"stepped":   len(active),
			"active":    len(next),
			"finishers": len(e.finishers),
		}).Debug("round complete")

		active, next = next, active
	}

	// 4) Done: derive the answer from the finishers.
	if len(e.finishers) == 0 {
		log.WithField("rounds", rounds).Debug("all walkers died before reaching the goal")
		return nil, fmt.Errorf("%w: all walkers died after %d rounds", ErrUnreachableGoal, rounds)
	}
	cost, cells, err := Aggregate(e.finishers)
	if err != nil {
		return nil, err
	}

	res := &Result{
		MinimumCost:  cost,
		OptimalCells: cells,
		Finishers:    append([]Finisher(nil), e.finishers...),
		Rounds:       rounds,
		Table:        e.table,
	}
	log.WithFields(logrus.Fields{
		"rounds":         rounds,
		"minimum_cost":   cost,
		"optimal_cells":  cells.Size(),
		"finishers":      len(res.Finishers),
		"claimed_states": e.table.Claimed(),
		"trail_nodes":    e.trail.Len(),
	}).Info("search finished")

	return res, nil
}

// stepRound steps every walker of active and returns one Step per walker,
// in the same order. Large populations are split across workers.
func (e *Engine) stepRound(ctx context.Context, active []Walker) ([]Step, error) {
	if cap(e.steps) < len(active) {
		e.steps = make([]Step, len(active), 2*len(active))
	}
	steps := e.steps[:len(active)]

	workers := e.opts.Workers
	if workers <= 1 || len(active) < minParallelBatch {
		for i, w := range active {
			st, err := e.stepper.Step(w)
			if err != nil {
				return nil, err
			}
			steps[i] = st
		}

		return steps, nil
	}

	grp, gctx := errgroup.WithContext(ctx)
	chunk := (len(active) + workers - 1) / workers
	for lo := 0; lo < len(active); lo += chunk {
		hi := min(lo+chunk, len(active))
		grp.Go(func() error {
			for i := lo; i < hi; i++ {
				if i%minParallelBatch == 0 && gctx.Err() != nil {
					return gctx.Err()
				}
				st, err := e.stepper.Step(active[i])
				if err != nil {
					return err
				}
				steps[i] = st
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return steps, nil
}

// Aggregate computes the final answer from a list of finishers: the lowest
// cost among them and the union of the paths of every finisher at that cost.
// Returns ErrNoFinisher if finishers is empty.
func Aggregate(finishers []Finisher) (uint64, mapset.Set[grid.Cell], error) {
	if len(finishers) == 0 {
		return 0, mapset.Set[grid.Cell]{}, ErrNoFinisher
	}
	best := finishers[0].Cost
	for _, f := range finishers[1:] {
		best = min(best, f.Cost)
	}

	cells := mapset.New[grid.Cell]()
	for _, f := range finishers {
		if f.Cost != best {
			continue
		}
		f.Path.Each(func(c grid.Cell) {
			cells.Put(c)
		})
	}

	return best, cells, nil
}
