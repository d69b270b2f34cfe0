package problem_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/problem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDiamond constructs:
//
//	A -r(1)-> B -d(1)-> D
//	A -d(4)-> C -r(1)-> D
func buildDiamond(t *testing.T) *problem.Graph[string] {
	t.Helper()
	g := problem.NewGraph("A", "D")
	require.NoError(t, g.AddEdge("A", "B", "r", 1))
	require.NoError(t, g.AddEdge("A", "C", "d", 4))
	require.NoError(t, g.AddEdge("B", "D", "d", 1))
	require.NoError(t, g.AddEdge("C", "D", "r", 1))

	return g
}

func TestGraph_Contract(t *testing.T) {
	g := buildDiamond(t)
	assert.Equal(t, "A", g.StartState())
	assert.True(t, g.IsGoal("D"))
	assert.False(t, g.IsGoal("A"))

	succ := g.Successors("A")
	require.Len(t, succ, 2)
	assert.Equal(t, problem.Successor[string]{State: "B", Action: "r", Cost: 1}, succ[0])
	assert.Equal(t, problem.Successor[string]{State: "C", Action: "d", Cost: 4}, succ[1])
	assert.Empty(t, g.Successors("D"))

	// returned slice is a copy
	succ[0].Cost = 99
	assert.Equal(t, 1.0, g.Successors("A")[0].Cost)
}

func TestGraph_AddEdgeErrors(t *testing.T) {
	g := problem.NewGraph[int](0, 1)
	assert.ErrorIs(t, g.AddEdge(0, 1, "x", -1), problem.ErrNegativeCost)
	assert.ErrorIs(t, g.AddEdge(0, 1, "", 1), problem.ErrEmptyAction)
	require.NoError(t, g.AddEdge(0, 1, "x", 1))
	assert.ErrorIs(t, g.AddEdge(0, 2, "x", 1), problem.ErrDuplicateAction)
}

func TestReplay(t *testing.T) {
	g := buildDiamond(t)

	end, cost, err := problem.Replay[string](g, []problem.Action{"r", "d"})
	require.NoError(t, err)
	assert.Equal(t, "D", end)
	assert.Equal(t, 2.0, cost)

	cost, err = problem.PathCost[string](g, []problem.Action{"d", "r"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, cost)
}

func TestReplay_Errors(t *testing.T) {
	g := buildDiamond(t)

	_, _, err := problem.Replay[string](g, []problem.Action{"r", "r"})
	assert.ErrorIs(t, err, problem.ErrUnknownAction)

	end, _, err := problem.Replay[string](g, []problem.Action{"r"})
	assert.ErrorIs(t, err, problem.ErrNotGoal)
	assert.Equal(t, "B", end)

	_, _, err = problem.Replay[string](nil, nil)
	assert.ErrorIs(t, err, problem.ErrNilProblem)
}

func TestReplay_EmptyPathAtGoal(t *testing.T) {
	g := problem.NewGraph("A", "A")
	end, cost, err := problem.Replay[string](g, []problem.Action{})
	require.NoError(t, err)
	assert.Equal(t, "A", end)
	assert.Zero(t, cost)
}

func TestNullHeuristic(t *testing.T) {
	g := buildDiamond(t)
	assert.Zero(t, problem.NullHeuristic[string]("B", g))
}
