package maze

import (
	"math"

	"github.com/katalvlaran/lvsearch/problem"
)

// goaler is implemented by problems that expose their single goal cell.
type goaler interface {
	Goal() Cell
}

// Manhattan returns |Δrow| + |Δcol| to the goal of p.
// If p does not expose a goal cell the estimate is 0.
func Manhattan(c Cell, p problem.Problem[Cell]) float64 {
	dr, dc, ok := delta(c, p)
	if !ok {
		return 0
	}

	return float64(dr + dc)
}

// Euclidean returns the straight-line distance to the goal of p.
func Euclidean(c Cell, p problem.Problem[Cell]) float64 {
	dr, dc, ok := delta(c, p)
	if !ok {
		return 0
	}

	return math.Hypot(float64(dr), float64(dc))
}

// Octile returns the cost of the cheapest obstacle-free Conn8 route to the
// goal of p on unit terrain: diagonal steps for the shorter axis, straight
// steps for the rest.
func Octile(c Cell, p problem.Problem[Cell]) float64 {
	dr, dc, ok := delta(c, p)
	if !ok {
		return 0
	}
	lo, hi := dr, dc
	if lo > hi {
		lo, hi = hi, lo
	}

	return float64(hi-lo) + math.Sqrt2*float64(lo)
}

// delta returns the absolute row and column offsets from c to the goal of p.
func delta(c Cell, p problem.Problem[Cell]) (int, int, bool) {
	g, ok := p.(goaler)
	if !ok {
		return 0, 0, false
	}
	goal := g.Goal()

	return abs(c.Row - goal.Row), abs(c.Col - goal.Col), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

var (
	_ problem.Heuristic[Cell] = Manhattan
	_ problem.Heuristic[Cell] = Euclidean
	_ problem.Heuristic[Cell] = Octile
)
