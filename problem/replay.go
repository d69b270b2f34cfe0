package problem

import (
	"errors"
	"fmt"
)

var (
	// ErrNilProblem is returned by Replay when p is nil.
	ErrNilProblem = errors.New("problem: problem is nil")

	// ErrUnknownAction indicates an action that is not among the successors
	// of the state it is applied to.
	ErrUnknownAction = errors.New("problem: action not available from state")

	// ErrNotGoal indicates a replayed path that does not end on a goal state.
	ErrNotGoal = errors.New("problem: path does not end at a goal state")
)

// Replay applies actions in order from p.StartState(), following the first
// successor whose Action matches at each step. It returns the final state and
// the summed step cost.
//
// Errors:
//   - ErrNilProblem if p is nil.
//   - ErrUnknownAction (wrapped with the step index) if an action is unavailable.
//   - ErrNotGoal if every action applies but the final state is not a goal.
//
// Complexity: O(len(actions) × branching factor).
func Replay[S comparable](p Problem[S], actions []Action) (S, float64, error) {
	var zero S
	if p == nil {
		return zero, 0, ErrNilProblem
	}

	state := p.StartState()
	var total float64
	for i, a := range actions {
		next, cost, ok := step(p, state, a)
		if !ok {
			return state, total, fmt.Errorf("%w: step %d action %q from %v", ErrUnknownAction, i, a, state)
		}
		state = next
		total += cost
	}
	if !p.IsGoal(state) {
		return state, total, fmt.Errorf("%w: stopped at %v", ErrNotGoal, state)
	}

	return state, total, nil
}

// PathCost returns the total step cost of actions, or the error Replay reports.
func PathCost[S comparable](p Problem[S], actions []Action) (float64, error) {
	_, cost, err := Replay(p, actions)

	return cost, err
}

// step finds the successor of state labelled a.
func step[S comparable](p Problem[S], state S, a Action) (S, float64, bool) {
	for _, s := range p.Successors(state) {
		if s.Action == a {
			return s.State, s.Cost, true
		}
	}
	var zero S

	return zero, 0, false
}
