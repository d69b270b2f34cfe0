package search

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/problem"
)

// DepthFirst searches the deepest nodes first using a Stack frontier.
// The returned path reaches a goal but is not necessarily the shortest.
func DepthFirst[S comparable](p problem.Problem[S], opts ...Option[S]) ([]problem.Action, error) {
	return run(p, &lifo[S]{}, nil, opts)
}

// BreadthFirst searches the shallowest nodes first using a Queue frontier.
// The returned path has the fewest actions; it is cost-optimal only when all
// step costs are equal.
func BreadthFirst[S comparable](p problem.Problem[S], opts ...Option[S]) ([]problem.Action, error) {
	return run(p, &fifo[S]{}, nil, opts)
}

// UniformCost searches the node of least accumulated cost first.
// With non-negative step costs the returned path has minimum total cost.
func UniformCost[S comparable](p problem.Problem[S], opts ...Option[S]) ([]problem.Action, error) {
	return run(p, &lowest[S]{}, func(n *Node[S]) float64 { return n.Cost }, opts)
}

// AStar searches the node with the lowest cost-plus-estimate first.
// The priority of a node is its accumulated cost plus h(node.State, p).
// A nil h is treated as problem.NullHeuristic, which makes AStar behave as
// UniformCost. With an admissible and consistent h the returned path has
// minimum total cost; an inadmissible h still terminates on finite spaces but
// may return a costlier path.
func AStar[S comparable](p problem.Problem[S], h problem.Heuristic[S], opts ...Option[S]) ([]problem.Action, error) {
	if h == nil {
		h = problem.NullHeuristic[S]
	}

	return run(p, &lowest[S]{}, func(n *Node[S]) float64 { return n.Cost + h(n.State, p) }, opts)
}

// walker holds the mutable state of one search call.
type walker[S comparable] struct {
	problem  problem.Problem[S]
	opts     Options[S]
	frontier frontier[S]
	priority func(*Node[S]) float64 // nil: uninformed, pushes with priority 0
	visited  map[S]struct{}
	stats    Stats
}

// run validates options, seeds the frontier and drives the shared loop.
func run[S comparable](p problem.Problem[S], f frontier[S], priority func(*Node[S]) float64, opts []Option[S]) ([]problem.Action, error) {
	if p == nil {
		return nil, ErrProblemNil
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		problem:  p,
		opts:     o,
		frontier: f,
		priority: priority,
		visited:  make(map[S]struct{}),
	}
	if o.Stats != nil {
		defer func() { *o.Stats = w.stats }()
	}

	// Seeded: the start node has an empty, non-nil path so that a start
	// which is already a goal yields an empty successful path.
	w.push(&Node[S]{State: p.StartState(), Path: []problem.Action{}})

	return w.loop()
}

// loop pops until a goal is expanded or the frontier empties.
func (w *walker[S]) loop() ([]problem.Action, error) {
	for !w.frontier.isEmpty() {
		n := w.frontier.pop()

		if _, seen := w.visited[n.State]; seen {
			w.stats.Stale++
			continue
		}
		if w.opts.MaxExpansions > 0 && w.stats.Expanded >= w.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.stats.Expanded)
		}

		w.visited[n.State] = struct{}{}
		w.stats.Expanded++
		if err := w.opts.OnExpand(*n); err != nil {
			return nil, fmt.Errorf("search: OnExpand hook at %v: %w", n.State, err)
		}

		if w.problem.IsGoal(n.State) {
			return n.Path, nil
		}
		w.expand(n)
	}

	return nil, ErrNoSolution
}

// expand pushes a child node for every successor of n that is not visited.
// Each child gets its own copy of the path; parents are never modified.
func (w *walker[S]) expand(n *Node[S]) {
	for _, s := range w.problem.Successors(n.State) {
		if _, seen := w.visited[s.State]; seen {
			continue
		}
		path := make([]problem.Action, len(n.Path)+1)
		copy(path, n.Path)
		path[len(n.Path)] = s.Action

		w.push(&Node[S]{State: s.State, Path: path, Cost: n.Cost + s.Cost})
	}
}

// push computes the node's priority, records stats and calls OnPush.
func (w *walker[S]) push(n *Node[S]) {
	var prio float64
	if w.priority != nil {
		prio = w.priority(n)
	}
	w.frontier.push(n, prio)
	w.stats.Pushed++
	if l := w.frontier.len(); l > w.stats.MaxFrontier {
		w.stats.MaxFrontier = l
	}
	w.opts.OnPush(*n, prio)
}
