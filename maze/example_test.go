package maze_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleGenerate builds a seeded maze and checks its guarantees.
func ExampleGenerate() {
	res, err := maze.Generate(11, 21, 3, maze.NewRNG(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := res.Grid
	fmt.Println("size:", g.Height, "x", g.Width)
	fmt.Println("start/goal:", g.Count(grid.Start), g.Count(grid.Goal))
	fmt.Println("hazard-free route:", g.Reachable(res.Start, res.Goal, true))
	fmt.Println("rewards <= 3:", len(res.Rewards) <= 3)
	// Output:
	// size: 11 x 21
	// start/goal: 1 1
	// hazard-free route: true
	// rewards <= 3: true
}
