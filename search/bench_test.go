package search_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// BenchmarkSearch_OpenGrid runs each strategy on an open 100×100 maze.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	m := randomMaze(b, 42, 100, 100, 0, false, maze.DefaultOptions())
	for _, alg := range allAlgorithms() {
		b.Run(alg.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = alg.run(m)
			}
		})
	}
}

// BenchmarkAStar_WeightedDiagonal runs A* with the octile heuristic on a
// weighted 8-connected maze.
func BenchmarkAStar_WeightedDiagonal(b *testing.B) {
	m := randomMaze(b, 42, 100, 100, 0.2, true, maze.Options{Conn: maze.Conn8})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar(m, maze.Octile)
	}
}
