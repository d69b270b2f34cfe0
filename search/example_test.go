package search_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleUniformCost finds the cheapest route in a small road network where
// the route with fewest hops is not the cheapest.
func ExampleUniformCost() {
	g := problem.NewGraph("home", "work")
	_ = g.AddEdge("home", "work", "highway", 10)
	_ = g.AddEdge("home", "park", "walk", 2)
	_ = g.AddEdge("park", "cafe", "stroll", 2)
	_ = g.AddEdge("cafe", "work", "bus", 3)

	hops, _ := search.BreadthFirst[string](g)
	cheap, _ := search.UniformCost[string](g)
	fmt.Println("bfs:", hops)
	fmt.Println("ucs:", cheap)
	// Output:
	// bfs: [highway]
	// ucs: [walk stroll bus]
}

// ExampleAStar_noSolution shows the no-solution sentinel.
func ExampleAStar_noSolution() {
	m, _ := maze.FromLines([]string{
		"S %%%",
		"  %G%",
		"  %%%",
	}, maze.DefaultOptions())

	path, err := search.AStar(m, maze.Manhattan)
	fmt.Println(path == nil, errors.Is(err, search.ErrNoSolution))
	// Output:
	// true true
}

// ExampleWithOnExpand counts expansions per strategy on the same maze.
func ExampleWithOnExpand() {
	m, _ := maze.FromLines([]string{
		"        ",
		"        ",
		"S      G",
		"        ",
		"        ",
	}, maze.DefaultOptions())

	for _, name := range []string{"bfs", "astar"} {
		var st search.Stats
		opts := []search.Option[maze.Cell]{search.WithStats[maze.Cell](&st)}
		var path []problem.Action
		if name == "bfs" {
			path, _ = search.BreadthFirst(m, opts...)
		} else {
			path, _ = search.AStar(m, maze.Manhattan, opts...)
		}
		fmt.Printf("%s: %d steps, %d expanded\n", name, len(path), st.Expanded)
	}
	// Output:
	// bfs: 7 steps, 34 expanded
	// astar: 7 steps, 8 expanded
}
