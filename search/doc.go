// Package search finds the minimum cost from a maze's start to its goal and
// the set of every cell lying on at least one minimum-cost route, under a
// movement model where cost depends on both position and facing.
//
// Overview:
//
//   - A Walker carries a location, a facing, an accumulated cost and the set
//     of cells it has visited. One walker starts at the start cell facing East.
//   - Moving forward costs StepCost (1). A 90° turn costs TurnCost (1000) and
//     is always followed by a forward step. Walkers never reverse in place.
//   - The search runs in synchronous rounds. Every round, each active walker
//     is handed to the Stepper, which claims the walker's (cell, facing) state
//     in the dominance table and then decides to die, continue or fork.
//   - A walker standing on the goal is recorded as a Finisher and keeps
//     walking; a cheaper route to the goal may still arrive through a
//     different facing.
//   - When no walkers remain, the minimum cost is the cheapest Finisher and
//     the optimal cells are the union of the paths of all Finishers at that
//     cost.
//
// Dominance:
//
//   - The bestcost.Table is the only pruning authority. A walker survives a
//     claim when its cost is less than or equal to the best recorded cost for
//     its state. Ties survive, which is how every co-optimal route reaches
//     the goal, and it keeps the result independent of walker order within a
//     round.
//
// Stepper decision table (front, left, right; T = open):
//
//	F F F  dead end
//	T F F  forward
//	F T F  turn left, forward
//	F F T  turn right, forward
//	T T F  fork: forward | left+forward
//	T F T  fork: forward | right+forward
//	F T T  fork: left+forward | right+forward
//	T T T  fork: forward | left+forward | right+forward
//
// Paths:
//
//   - Visited cells live in an append-only trail arena shared by all walkers
//     of one run; each walker holds the index of its last trail node, so a
//     fork never copies its predecessor's path.
//
// Concurrency:
//
//   - By default rounds are stepped on the calling goroutine.
//   - WithWorkers(n) steps each round on up to n goroutines
//     (golang.org/x/sync/errgroup). Claims are atomic, and step results are
//     merged in walker order, so MinimumCost and OptimalCells are identical
//     to the sequential mode. Rounds and the Finisher list may differ,
//     because the order of same-round claims decides whether a strictly
//     dominated walker is caught in that round or the next.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if New receives a nil grid.
//   - ErrOptionViolation  if an option is out of range.
//   - ErrUnreachableGoal  if every walker dies before any reaches the goal.
//   - ErrNoFinisher       if Aggregate is given no finishers.
//   - ErrRoundLimit       if WithMaxRounds is set and exceeded.
//   - grid.ErrInvalidTransition if a walker carries an undefined facing.
//
// Complexity:
//
//   - Each (cell, facing) state accepts a bounded number of claims, so the
//     number of rounds is bounded by the number of states (W×H×4) and each
//     round is linear in the active population.
//
// Example usage:
//
//	g, err := grid.Parse(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := search.Solve(ctx, g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.MinimumCost, res.OptimalCount())
package search
