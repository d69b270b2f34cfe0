package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/problem"
)

// Sentinel errors for search execution.
var (
	// ErrProblemNil is returned when a nil problem is passed.
	ErrProblemNil = errors.New("search: problem is nil")

	// ErrNoSolution is returned when no goal state is reachable from the start.
	ErrNoSolution = errors.New("search: no solution found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops the search.
	ErrExpansionLimit = errors.New("search: expansion limit reached")
)

// Node is a search tree node: a state, the actions that reach it from the
// start, and their accumulated cost. Nodes are never modified after creation;
// hooks must not modify Path.
type Node[S comparable] struct {
	State S
	Path  []problem.Action
	Cost  float64
}

// Depth returns the number of actions from the start to n.
func (n Node[S]) Depth() int { return len(n.Path) }

// Stats counts the work done by one search call.
type Stats struct {
	Expanded    int // nodes marked visited, including the goal
	Pushed      int // nodes pushed, including the start node
	Stale       int // popped nodes discarded because their state was visited
	MaxFrontier int // largest frontier size observed
}

// Option configures a search via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option[S comparable] func(*Options[S])

// Options holds the parameters and callbacks of one search call.
type Options[S comparable] struct {
	// OnExpand is called for each node when its state is marked visited,
	// before the goal test. Returning an error aborts the search.
	OnExpand func(n Node[S]) error

	// OnPush is called for each node pushed onto the frontier together with
	// its priority (0 for the uninformed strategies).
	OnPush func(n Node[S], priority float64)

	// MaxExpansions, if > 0, stops the search with ErrExpansionLimit once
	// that many nodes have been expanded without reaching a goal.
	// 0 disables the limit.
	MaxExpansions int

	// Stats, if non-nil, receives the counters of the call when it returns.
	Stats *Stats

	err error
}

// DefaultOptions returns Options with no-op hooks, no expansion limit and
// no stats sink.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		OnExpand: func(Node[S]) error { return nil },
		OnPush:   func(Node[S], float64) {},
	}
}

// WithOnExpand registers a callback run on every expanded node.
func WithOnExpand[S comparable](fn func(n Node[S]) error) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run on every pushed node.
func WithOnPush[S comparable](fn func(n Node[S], priority float64)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: stop after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions[S comparable](n int) Option[S] {
	return func(o *Options[S]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// WithStats makes the search store its counters in st when it returns.
func WithStats[S comparable](st *Stats) Option[S] {
	return func(o *Options[S]) {
		o.Stats = st
	}
}
