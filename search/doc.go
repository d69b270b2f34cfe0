// Package search implements the four classic state-space search strategies
// over a problem.Problem: depth-first, breadth-first, uniform-cost and A*.
//
// What
//
//   - DepthFirst:   Stack frontier. Returns a path, not necessarily the shortest.
//   - BreadthFirst: Queue frontier. Returns a path with the fewest actions.
//   - UniformCost:  PriorityQueue keyed by accumulated cost g. Returns a
//     minimum-cost path when step costs are non-negative.
//   - AStar:        PriorityQueue keyed by g + h(state). Returns a minimum-cost
//     path when h is admissible and consistent.
//
// All four share one loop and differ only in the frontier and the priority a
// node is pushed with:
//
//	seed frontier with the start node
//	while frontier not empty:
//	    pop node
//	    if node.State visited: skip (stale duplicate)
//	    mark visited
//	    if goal: return node.Path
//	    push a new node for every successor not yet visited
//	return ErrNoSolution
//
// Visited-on-pop
//
//	A state is marked visited when it is expanded, not when it is pushed, so
//	the frontier may hold several entries for one state. Stale entries are
//	discarded when popped. A visited state is never re-expanded, even if a
//	cheaper route to it is found later.
//
// Determinism
//
//	Given a problem whose Successors order is deterministic, every strategy
//	returns the same path on every call. Equal priorities pop in push order.
//
// Return contract
//
//   - Success: a non-nil action slice (empty when the start is a goal) and nil.
//   - Goal unreachable: nil and ErrNoSolution. This is an expected outcome,
//     test it with errors.Is.
//
// Options
//
//   - WithOnExpand(fn):     hook on every expanded node; an error aborts the search.
//   - WithOnPush(fn):       hook on every pushed node with its priority.
//   - WithMaxExpansions(n): stop with ErrExpansionLimit after n expansions (n>0).
//   - WithStats(&st):       receive expansion and frontier counters.
//
// Errors
//
//   - ErrProblemNil       if the problem is nil.
//   - ErrNoSolution       if the frontier empties without reaching a goal.
//   - ErrOptionViolation  if an option is invalid (negative expansion budget).
//   - ErrExpansionLimit   if the expansion budget is exhausted.
//   - Wrapped hook errors from OnExpand.
//
// Panics raised by a Problem or Heuristic are not recovered.
//
// Concurrency
//
//	A call owns its frontier and visited set. Concurrent calls on the same
//	problem are safe only if its Successors is read-only.
//
// Complexity (b = branching factor, V = reachable states, E = transitions)
//
//   - DepthFirst, BreadthFirst: O(V + E) pushes and pops.
//   - UniformCost, AStar:       O(E log E) with the lazy duplicate frontier.
//   - Memory: O(E) frontier entries, each carrying its own path.
package search
