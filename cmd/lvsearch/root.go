package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/solver"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands of one invocation.
type app struct {
	flags  GlobalFlags
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "lvsearch",
		Short: "Solve grid mazes with classic state-space search",
		Long: `lvsearch finds a path from S to G through a text maze.

Walls are '%', open cells are ' ' or '.', and the digits 1-9 are open
cells that cost that much to enter. Depth-first, breadth-first,
uniform-cost and A* search are available.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	a.flags.register(cmd)
	cmd.AddCommand(newSolveCmd(a), newCompareCmd(a), newAlgorithmsCmd(a))

	return cmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v := config.NewValidator()
	cfg, err := config.NewLoader(v).LoadWithDefaults(a.flags.ConfigFile)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	if err := a.flags.applyOverrides(cmd, cfg); err != nil {
		return err
	}
	if err := v.Validate(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Logging)
	slog.SetDefault(a.logger)
	a.logger.Debug("configuration loaded", "file", a.flags.ConfigFile, "algorithm", cfg.Search.Algorithm)

	return nil
}

// newLogger builds a text or JSON slog logger at the configured level.
func newLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// loadMaze reads the maze file using the configured connectivity.
func (a *app) loadMaze(path string) (*maze.Maze, error) {
	opts := maze.DefaultOptions()
	if a.cfg.Search.Diagonal {
		opts.Conn = maze.Conn8
	}
	m, err := maze.Load(path, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMaze, err)
	}
	a.logger.Info("maze loaded", "file", path, "width", m.Width(), "height", m.Height(), "conn", m.Conn().String())

	return m, nil
}

// request builds a solver request from the configuration.
func (a *app) request(alg solver.Algorithm) solver.Request {
	return solver.Request{
		Algorithm:     alg,
		Heuristic:     a.cfg.Search.Heuristic,
		MaxExpansions: a.cfg.Search.MaxExpansions,
		Explore:       a.cfg.Output.ShowExplored,
		Verify:        a.cfg.Output.Verify,
		Logger:        a.logger,
	}
}

// printer returns an output printer for w using the configured format.
func (a *app) printer(w io.Writer) *printer {
	return newPrinter(w, a.cfg.Output)
}
