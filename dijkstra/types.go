// Package dijkstra defines configuration options and sentinel errors for
// the reference state-space solver.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/reindeer/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadSource indicates a source state that is off-grid, on a wall, or
	// has an undefined heading.
	ErrBadSource = errors.New("dijkstra: invalid source state")

	// ErrUnreachable indicates that no goal state was reached.
	ErrUnreachable = errors.New("dijkstra: goal is unreachable from start")

	// ErrOptionViolation indicates an out-of-range option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Default cost model.
const (
	DefaultStepCost uint64 = 1
	DefaultTurnCost uint64 = 1000
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Sources  – states with cost 0; nil means {start, East} (or all four goal
//
//	headings when Reverse is set).
//
// Reverse  – relax edges backwards; distances become cost-to-go.
// MaxCost  – states whose cost would exceed this are not settled.
//
//	Default is math.MaxUint64 (no cap).
//
// StepCost – weight of a forward move. Must be > 0.
// TurnCost – extra weight of a 90° turn. Must be > 0.
type Options struct {
	Sources  []grid.State
	Reverse  bool
	MaxCost  uint64
	StepCost uint64
	TurnCost uint64

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns forward search from the default source with the
// 1 / 1000 cost model and no cost cap.
func DefaultOptions() Options {
	return Options{
		Sources:  nil,
		Reverse:  false,
		MaxCost:  math.MaxUint64,
		StepCost: DefaultStepCost,
		TurnCost: DefaultTurnCost,
	}
}

// WithSources replaces the default source states.
func WithSources(states ...grid.State) Option {
	return func(o *Options) {
		o.Sources = append([]grid.State(nil), states...)
	}
}

// WithReverse runs the search on the transposed state graph.
func WithReverse() Option {
	return func(o *Options) {
		o.Reverse = true
	}
}

// WithMaxCost sets a maximum cost threshold.
// States whose shortest cost would exceed this value are not explored.
func WithMaxCost(max uint64) Option {
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithCosts overrides the step and turn weights. Both must be positive;
// zero values record ErrOptionViolation.
func WithCosts(step, turn uint64) Option {
	return func(o *Options) {
		if step == 0 || turn == 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: costs must be positive (step=%d, turn=%d)", ErrOptionViolation, step, turn)
			}
			return
		}
		o.StepCost = step
		o.TurnCost = turn
	}
}
