package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/solver"
	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile   string
	OutputFormat string
	Verbose      bool
	Quiet        bool
	NoColor      bool
}

// register adds the persistent flags to cmd.
func (g *GlobalFlags) register(cmd *cobra.Command) {
	d := config.DefaultConfig()
	f := cmd.PersistentFlags()
	f.StringVar(&g.ConfigFile, "config", "", "path to a YAML config file")
	f.StringVarP(&g.OutputFormat, "output", "o", d.Output.Format, "output format (text|json|yaml)")
	f.BoolVarP(&g.Verbose, "verbose", "v", false, "log every expansion at debug level")
	f.BoolVarP(&g.Quiet, "quiet", "q", false, "log errors only")
	f.BoolVar(&g.NoColor, "no-color", false, "disable coloured output")
}

// addSearchFlags adds the per-run flags. compare runs every algorithm, so it
// passes withAlgorithm=false.
func addSearchFlags(cmd *cobra.Command, withAlgorithm bool) {
	d := config.DefaultConfig()
	f := cmd.Flags()
	if withAlgorithm {
		names := make([]string, 0, len(solver.Algorithms()))
		for _, a := range solver.Algorithms() {
			names = append(names, string(a))
		}
		f.StringP("algorithm", "a", d.Search.Algorithm, "search algorithm ("+strings.Join(names, "|")+")")
	}
	f.String("heuristic", d.Search.Heuristic, "A* heuristic ("+strings.Join(solver.Heuristics(), "|")+")")
	f.Bool("diagonal", d.Search.Diagonal, "allow diagonal moves")
	f.Int("max-expansions", d.Search.MaxExpansions, "stop after this many expansions (0 = no limit)")
	f.Bool("verify", d.Output.Verify, "replay the path against the maze before reporting it")
	f.Bool("show-path", d.Output.ShowPath, "draw the path over the maze")
	f.Bool("show-explored", d.Output.ShowExplored, "mark expanded cells when drawing the maze")
}

// applyOverrides copies every flag the user set onto cfg. Flags left at their
// defaults do not override the config file.
func (g *GlobalFlags) applyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	if g.Verbose && g.Quiet {
		return fmt.Errorf("%w: --verbose and --quiet cannot be used together", errUsage)
	}

	f := cmd.Flags()
	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}

	set("output", func() error { cfg.Output.Format = g.OutputFormat; return nil })
	set("no-color", func() error { cfg.Output.Color = !g.NoColor; return nil })
	set("verbose", func() error { cfg.Logging.Level = "debug"; return nil })
	set("quiet", func() error { cfg.Logging.Level = "error"; return nil })
	set("algorithm", func() (e error) { cfg.Search.Algorithm, e = f.GetString("algorithm"); return })
	set("heuristic", func() (e error) { cfg.Search.Heuristic, e = f.GetString("heuristic"); return })
	set("diagonal", func() (e error) { cfg.Search.Diagonal, e = f.GetBool("diagonal"); return })
	set("max-expansions", func() (e error) { cfg.Search.MaxExpansions, e = f.GetInt("max-expansions"); return })
	set("verify", func() (e error) { cfg.Output.Verify, e = f.GetBool("verify"); return })
	set("show-path", func() (e error) { cfg.Output.ShowPath, e = f.GetBool("show-path"); return })
	set("show-explored", func() (e error) { cfg.Output.ShowExplored, e = f.GetBool("show-explored"); return })

	return err
}
