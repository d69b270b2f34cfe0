// Package maze provides a text grid maze that satisfies problem.Problem[Cell],
// together with admissible heuristics and a renderer for solution paths.
//
// File format
//
//	%  wall
//	S  start (exactly one)
//	G  goal (exactly one)
//	   open cell (space), entry cost 1
//	.  open cell, entry cost 1
//	1-9 open cell whose entry cost is the digit
//
// Rows may differ in length; the maze is as wide as its longest row and
// missing cells on shorter rows are open. Trailing empty lines are ignored.
//
// Moves
//
//	Conn4 (default) generates North, South, West, East in that order.
//	Conn8 appends NorthEast, NorthWest, SouthEast, SouthWest. A diagonal move
//	costs √2 × the entry cost and is only allowed when both orthogonal cells
//	it passes are open (no corner cutting).
//
// Heuristics
//
//   - Manhattan: admissible and consistent for Conn4.
//   - Octile:    admissible and consistent for Conn4 and Conn8.
//   - Euclidean: admissible for both, weaker than the above.
//
// All step costs are at least 1 per orthogonal step, which is what keeps the
// distance heuristics admissible on weighted terrain.
//
// A Maze is immutable after Parse, so concurrent searches over one Maze are safe.
package maze
