package maze_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleMaze_Render solves a small maze with A* and prints the path overlay.
func ExampleMaze_Render() {
	src := strings.Join([]string{
		"%%%%%%%",
		"%S    %",
		"%%%%% %",
		"%G    %",
		"%%%%%%%",
	}, "\n")
	m, err := maze.Parse(strings.NewReader(src), maze.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := search.AStar(m, maze.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cells, _ := m.Trace(path)
	for _, row := range m.Render(cells, nil) {
		fmt.Println(row)
	}
	fmt.Println(len(path), "steps")
	// Output:
	// %%%%%%%
	// %S****%
	// %%%%%*%
	// %G****%
	// %%%%%%%
	// 10 steps
}
