package main

import (
	"github.com/katalvlaran/lvsearch/internal/solver"
	"github.com/spf13/cobra"
)

// algorithmInfo describes one registered algorithm for listing.
type algorithmInfo struct {
	Name     string   `json:"name" yaml:"name"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Frontier string   `json:"frontier" yaml:"frontier"`
	Optimal  string   `json:"optimal" yaml:"optimal"`
}

var algorithmInfos = map[solver.Algorithm]algorithmInfo{
	solver.DFS:   {Frontier: "stack", Optimal: "no"},
	solver.BFS:   {Frontier: "queue", Optimal: "fewest actions"},
	solver.UCS:   {Frontier: "priority queue (g)", Optimal: "least cost"},
	solver.AStar: {Frontier: "priority queue (g+h)", Optimal: "least cost with an admissible heuristic"},
}

func newAlgorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available algorithms and heuristics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := make([]algorithmInfo, 0, len(solver.Algorithms()))
			for _, alg := range solver.Algorithms() {
				info := algorithmInfos[alg]
				info.Name = string(alg)
				info.Aliases = solver.Aliases(alg)
				infos = append(infos, info)
			}

			return a.printer(cmd.OutOrStdout()).algorithms(infos, solver.Heuristics())
		},
	}
}
