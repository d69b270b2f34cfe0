// Package problem defines the contract a search target must satisfy and the
// heuristic contract used by informed search.
//
// A Problem is a black box over states of type S: a start state, a goal
// predicate, and a successor function. The search package depends only on
// this interface; concrete problems (such as maze.Maze) live elsewhere.
//
// Contract
//
//   - StartState returns the single initial state. A search calls it once.
//   - IsGoal is pure and total over every reachable state.
//   - Successors returns every directly reachable neighbor with the action
//     and non-negative step cost to reach it. It is deterministic for a fixed
//     state, may return an empty slice for a dead end, and must not mutate
//     shared state if the problem is searched concurrently.
//
// The engine does not verify any of this. A problem that breaks the contract
// yields undefined search results; validate input before searching.
package problem

// Action labels the transition from a state to one of its successors.
// It carries no cost of its own.
type Action string

// Successor is one outgoing transition returned by Problem.Successors.
type Successor[S comparable] struct {
	State  S       // state reached
	Action Action  // label of the transition
	Cost   float64 // non-negative step cost
}

// Problem is the capability set any search target provides.
// S must be comparable so states can key the visited set.
type Problem[S comparable] interface {
	// StartState returns the initial state.
	StartState() S
	// IsGoal reports whether state is a goal state.
	IsGoal(state S) bool
	// Successors returns the transitions out of state.
	Successors(state S) []Successor[S]
}

// Heuristic estimates the remaining cost from state to a goal of p.
// It must return a non-negative value. A* is optimal only when the
// heuristic is admissible and consistent; neither is checked.
type Heuristic[S comparable] func(state S, p Problem[S]) float64

// NullHeuristic always returns 0, which reduces A* to uniform-cost search.
func NullHeuristic[S comparable](S, Problem[S]) float64 { return 0 }
