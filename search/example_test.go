package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/reindeer/bestcost"
	"github.com/katalvlaran/reindeer/grid"
	"github.com/katalvlaran/reindeer/search"
)

// ExampleSolve finds the cheapest route through a small maze and marks
// every cell on an optimal route.
//
// Scenario:
//
//   - The start faces East into a wall, so the walker must turn North
//     (1000), walk to the top row, turn East (1000), walk along it and
//     turn South (1000) into the goal.
//   - 4 forward steps + 3 turns = 3004.
func ExampleSolve() {
	g, _ := grid.FromLines([]string{
		"#####",
		"#...#",
		"#S#E#",
		"#####",
	})
	res, err := search.Solve(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("minimum cost:", res.MinimumCost)
	fmt.Println("optimal cells:", res.OptimalCount())
	fmt.Println(g.Render(res.OptimalCells))
	// Output:
	// minimum cost: 3004
	// optimal cells: 5
	// #####
	// #OOO#
	// #O#O#
	// #####
}

// ExampleEngine_Run shows the unreachable-goal failure: the goal is
// connected to the start, but only behind the walker, and walkers never
// reverse.
func ExampleEngine_Run() {
	g, _ := grid.FromLines([]string{
		"######",
		"#E.S##",
		"######",
	})
	e, _ := search.New(g)
	_, err := e.Run(context.Background())
	fmt.Println(err)
	// Output:
	// search: goal is unreachable from start: all walkers died after 1 rounds
}

// ExampleStepper_Step steps the initial walker once at a T-junction.
func ExampleStepper_Step() {
	g, _ := grid.FromLines([]string{
		"#####",
		"#.#.#",
		"#S..#",
		"#.#E#",
		"#####",
	})
	tbl := bestcost.New(g)
	st, _ := search.NewStepper(g, tbl).Step(search.NewWalker(g.Start()))
	fmt.Println(st.Disposition)
	for _, w := range st.Successors() {
		fmt.Println(w.Location, w.Facing, w.Cost)
	}
	// Output:
	// Fork
	// (2,2) East 1
	// (1,1) North 1001
	// (3,1) South 1001
}
