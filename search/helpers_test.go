package search_test

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/stretchr/testify/require"
)

// algorithm names one entry point bound to a heuristic where needed.
type algorithm struct {
	name string
	run  func(p problem.Problem[maze.Cell], opts ...search.Option[maze.Cell]) ([]problem.Action, error)
}

// allAlgorithms returns the four strategies over maze cells; A* uses Manhattan.
func allAlgorithms() []algorithm {
	return []algorithm{
		{"dfs", search.DepthFirst[maze.Cell]},
		{"bfs", search.BreadthFirst[maze.Cell]},
		{"ucs", search.UniformCost[maze.Cell]},
		{"astar", func(p problem.Problem[maze.Cell], opts ...search.Option[maze.Cell]) ([]problem.Action, error) {
			return search.AStar(p, maze.Manhattan, opts...)
		}},
	}
}

// mustMaze parses rows into a maze or fails the test.
func mustMaze(t testing.TB, opts maze.Options, rows ...string) *maze.Maze {
	t.Helper()
	m, err := maze.FromLines(rows, opts)
	require.NoError(t, err)

	return m
}

// randomMaze builds an h×w maze with S at the top-left and G at the
// bottom-right. wallP is the wall probability; weighted mazes get digit costs.
func randomMaze(t testing.TB, seed int64, h, w int, wallP float64, weighted bool, opts maze.Options) *maze.Maze {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			switch {
			case y == 0 && x == 0:
				b.WriteByte('S')
			case y == h-1 && x == w-1:
				b.WriteByte('G')
			case r.Float64() < wallP:
				b.WriteByte('%')
			case weighted:
				b.WriteByte(byte('1' + r.Intn(9)))
			default:
				b.WriteByte(' ')
			}
		}
		rows[y] = b.String()
	}

	return mustMaze(t, opts, rows...)
}

// reachable enumerates every state reachable from the start of p.
func reachable[S comparable](p problem.Problem[S]) []S {
	start := p.StartState()
	seen := map[S]bool{start: true}
	order := []S{start}
	for i := 0; i < len(order); i++ {
		for _, s := range p.Successors(order[i]) {
			if !seen[s.State] {
				seen[s.State] = true
				order = append(order, s.State)
			}
		}
	}

	return order
}

// optimum computes the minimum cost from the start to any goal with
// Bellman-Ford relaxation, independent of the code under test. unit replaces
// every step cost with 1 (fewest actions). Returns +Inf if no goal is reachable.
func optimum[S comparable](p problem.Problem[S], unit bool) float64 {
	states := reachable(p)
	dist := make(map[S]float64, len(states))
	for _, s := range states {
		dist[s] = math.Inf(1)
	}
	dist[p.StartState()] = 0
	for round := 0; round < len(states); round++ {
		changed := false
		for _, u := range states {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, s := range p.Successors(u) {
				c := s.Cost
				if unit {
					c = 1
				}
				if d := dist[u] + c; d < dist[s.State]-1e-9 {
					dist[s.State] = d
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	best := math.Inf(1)
	for _, s := range states {
		if p.IsGoal(s) && dist[s] < best {
			best = dist[s]
		}
	}

	return best
}

// diamond builds a graph with two equal-length routes to G and a costlier
// shortcut, used to pin down tie-breaking:
//
//	A -a1(1)-> B -b(1)-> G
//	A -a2(1)-> C -c(1)-> G
//	A -a3(5)-> G
func diamond(t testing.TB) *problem.Graph[string] {
	t.Helper()
	g := problem.NewGraph("A", "G")
	for _, e := range []struct {
		from, to string
		act      problem.Action
		cost     float64
	}{
		{"A", "B", "a1", 1},
		{"A", "C", "a2", 1},
		{"A", "G", "a3", 5},
		{"B", "G", "b", 1},
		{"C", "G", "c", 1},
	} {
		require.NoError(t, g.AddEdge(e.from, e.to, e.act, e.cost), fmt.Sprint(e))
	}

	return g
}
