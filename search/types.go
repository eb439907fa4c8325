package search

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/reindeer/bestcost"
	"github.com/katalvlaran/reindeer/grid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOptionViolation indicates an out-of-range option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnreachableGoal indicates that every walker died before any of them
	// stood on the goal. It is never reported as a zero cost.
	ErrUnreachableGoal = errors.New("search: goal is unreachable from start")

	// ErrNoFinisher indicates that Aggregate was called without finishers.
	ErrNoFinisher = errors.New("search: no finishers to aggregate")

	// ErrRoundLimit indicates the search ran more rounds than WithMaxRounds allows.
	ErrRoundLimit = errors.New("search: round limit exceeded")
)

// Cost model.
const (
	// StepCost is charged for every forward move.
	StepCost uint64 = 1
	// TurnCost is charged for every 90° rotation.
	TurnCost uint64 = 1000
	// StartFacing is the heading of the initial walker.
	StartFacing = grid.East
)

// Disposition is the outcome of stepping one walker.
type Disposition int

const (
	// Dead: the walker was dominated or hit a dead end; no successors.
	Dead Disposition = iota
	// Continue: exactly one successor.
	Continue
	// Fork: two or three successors.
	Fork
)

// String returns the disposition name.
func (d Disposition) String() string {
	switch d {
	case Dead:
		return "Dead"
	case Continue:
		return "Continue"
	case Fork:
		return "Fork"
	default:
		return fmt.Sprintf("Disposition(%d)", int(d))
	}
}

// Finisher is a frozen snapshot of a walker taken while it stood on the goal.
type Finisher struct {
	Cost uint64
	Path mapset.Set[grid.Cell]
}

// Result holds the outcome of one search run.
//
//   - MinimumCost:  lowest cost of any route from start to goal.
//   - OptimalCells: every cell on at least one route of MinimumCost,
//     start and goal included.
//   - Finishers:    all goal snapshots, in the order they were recorded.
//   - Rounds:       number of rounds until the population was empty.
//   - Table:        the dominance table as it stood when the search ended.
type Result struct {
	MinimumCost  uint64
	OptimalCells mapset.Set[grid.Cell]
	Finishers    []Finisher
	Rounds       int
	Table        *bestcost.Table
}

// OptimalCount returns the number of distinct optimal cells.
func (r *Result) OptimalCount() int { return r.OptimalCells.Size() }

// Options configures an Engine.
//
// Workers   – goroutines used to step a round; 1 (default) is sequential.
// MaxRounds – abort with ErrRoundLimit after this many rounds; 0 = no limit.
// Logger    – receives round-level Debug entries and one Info summary.
// OnRound   – called after every round with the round number (1-based)
//
//	and the size of the next population.
type Options struct {
	Workers   int
	MaxRounds int
	Logger    logrus.FieldLogger
	OnRound   func(round, active int)

	// first error recorded while applying options
	err error
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns sequential stepping, no round limit, a logger that
// discards everything and a no-op round hook.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Workers:   1,
		MaxRounds: 0,
		Logger:    l,
		OnRound:   func(int, int) {},
	}
}

// WithWorkers steps each round on up to n goroutines.
//
//	n >= 1: use n workers
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.setErr(fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n))
			return
		}
		o.Workers = n
	}
}

// WithMaxRounds caps the number of rounds; 0 disables the cap.
// Negative values → ErrOptionViolation.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.setErr(fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxRounds = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRound registers a callback run after every round.
func WithOnRound(fn func(round, active int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

func (o *Options) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
