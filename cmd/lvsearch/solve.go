package main

import (
	"github.com/katalvlaran/lvsearch/internal/solver"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <maze-file>",
		Short: "Find a path through a maze",
		Example: `  lvsearch solve maze.txt
  lvsearch solve maze.txt -a astar --heuristic octile --diagonal --show-path
  lvsearch solve maze.txt -a ucs -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args[0])
		},
	}
	addSearchFlags(cmd, true)

	return cmd
}

// solve runs the configured algorithm once and prints the report. An
// unreachable goal is reported, not returned as an error.
func (a *app) solve(cmd *cobra.Command, path string) error {
	m, err := a.loadMaze(path)
	if err != nil {
		return err
	}
	rep, err := solver.Solve(m, a.request(solver.Algorithm(a.cfg.Search.Algorithm)))
	if err != nil {
		return err
	}

	return a.printer(cmd.OutOrStdout()).report(m, rep)
}
