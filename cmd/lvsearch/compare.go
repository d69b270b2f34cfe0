package main

import (
	"github.com/katalvlaran/lvsearch/internal/solver"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <maze-file>",
		Short: "Run every algorithm on a maze and compare the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMaze(args[0])
			if err != nil {
				return err
			}
			reports, err := solver.Compare(cmd.Context(), m, a.request(""))
			if err != nil {
				return err
			}

			return a.printer(cmd.OutOrStdout()).comparison(reports)
		},
	}
	addSearchFlags(cmd, false)

	return cmd
}
