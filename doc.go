// Package lvsearch is a small toolkit for classic state-space search:
// describe a problem once, then solve it with depth-first, breadth-first,
// uniform-cost or A* search.
//
// 🚀 What is lvsearch?
//
//	A generic, dependency-light search engine plus a grid-maze toolkit:
//		• Problem model: start state, goal test, successors with step costs
//		• Fringes: Stack (LIFO), Queue (FIFO), PriorityQueue with Update
//		• Strategies: DepthFirst, BreadthFirst, UniformCost, AStar
//		• Mazes: text format, 4/8 connectivity, terrain costs, rendering
//		• CLI: lvsearch solve | compare | algorithms
//
// ✨ Why lvsearch?
//
//   - Generic over any comparable state type
//   - Deterministic: equal priorities pop in insertion order
//   - Observable: OnExpand/OnPush hooks and Stats without touching the loop
//
// Packages:
//
//	fringe/           Stack, Queue, PriorityQueue
//	problem/          Problem, Successor, Heuristic, Replay, explicit Graph
//	search/           the four strategies, options, sentinel errors
//	maze/             grid mazes and their heuristics
//	internal/config   YAML/env configuration for the CLI
//	internal/solver   algorithm registry, timed runs, concurrent comparison
//	cmd/lvsearch      command-line driver
//
// Quick ASCII example:
//
//	S%%        S%%
//	 %%   →    *%%    South -> South -> East -> East
//	  G        **G
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
