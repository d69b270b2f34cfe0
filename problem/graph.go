package problem

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeCost is returned by Graph.AddEdge for a negative step cost.
	ErrNegativeCost = errors.New("problem: negative step cost")

	// ErrEmptyAction is returned by Graph.AddEdge for an empty action label.
	ErrEmptyAction = errors.New("problem: action label is empty")

	// ErrDuplicateAction is returned by Graph.AddEdge when from already has
	// an outgoing edge with the same action label.
	ErrDuplicateAction = errors.New("problem: duplicate action from state")
)

// Graph is an explicit, directed state graph that satisfies Problem.
// Successors are returned in the order edges were added, so searches over a
// Graph are reproducible. Build it fully before searching; it is not safe for
// mutation concurrently with a search.
type Graph[S comparable] struct {
	start S
	goals map[S]struct{}
	adj   map[S][]Successor[S]
}

// NewGraph returns a Graph whose start state is start and whose goal states
// are goals. A Graph with no goals has no solution.
func NewGraph[S comparable](start S, goals ...S) *Graph[S] {
	g := &Graph[S]{
		start: start,
		goals: make(map[S]struct{}, len(goals)),
		adj:   make(map[S][]Successor[S]),
	}
	for _, s := range goals {
		g.goals[s] = struct{}{}
	}

	return g
}

// AddEdge adds a directed transition from → to labelled action with the given cost.
// Action labels must be unique per source state so that paths replay unambiguously.
func (g *Graph[S]) AddEdge(from, to S, action Action, cost float64) error {
	if cost < 0 {
		return fmt.Errorf("%w: %v -%s-> %v cost=%g", ErrNegativeCost, from, action, to, cost)
	}
	if action == "" {
		return ErrEmptyAction
	}
	for _, s := range g.adj[from] {
		if s.Action == action {
			return fmt.Errorf("%w: %q from %v", ErrDuplicateAction, action, from)
		}
	}
	g.adj[from] = append(g.adj[from], Successor[S]{State: to, Action: action, Cost: cost})

	return nil
}

// StartState returns the start state given to NewGraph.
func (g *Graph[S]) StartState() S { return g.start }

// IsGoal reports whether state is one of the goal states.
func (g *Graph[S]) IsGoal(state S) bool {
	_, ok := g.goals[state]

	return ok
}

// Successors returns a copy of state's outgoing edges in insertion order.
func (g *Graph[S]) Successors(state S) []Successor[S] {
	out := g.adj[state]
	if len(out) == 0 {
		return nil
	}

	return append([]Successor[S](nil), out...)
}

var _ Problem[string] = (*Graph[string])(nil)
