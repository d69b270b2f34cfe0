// Package solver binds the search strategies to maze problems by name, times
// each run, and reports the outcome. It is the layer between the CLI and the
// search package.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for solver requests.
var (
	// ErrUnknownAlgorithm is returned for an algorithm name that is not registered.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")
	// ErrUnknownHeuristic is returned for a heuristic name that is not registered.
	ErrUnknownHeuristic = errors.New("solver: unknown heuristic")
	// ErrNilMaze is returned when no maze is given.
	ErrNilMaze = errors.New("solver: maze is nil")
)

// Algorithm names a search strategy.
type Algorithm string

// Registered algorithms, in the order Compare reports them.
const (
	DFS   Algorithm = "dfs"
	BFS   Algorithm = "bfs"
	UCS   Algorithm = "ucs"
	AStar Algorithm = "astar"
)

// aliases maps accepted spellings onto registered names.
var aliases = map[string]Algorithm{
	"dfs":    DFS,
	"bfs":    BFS,
	"ucs":    UCS,
	"astar":  AStar,
	"a_star": AStar,
	"a*":     AStar,
}

// Algorithms lists the registered algorithms.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, BFS, UCS, AStar}
}

// ParseAlgorithm resolves a case-insensitive name or alias.
func ParseAlgorithm(name string) (Algorithm, error) {
	a, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	return a, nil
}

// Aliases returns the extra spellings ParseAlgorithm accepts for a, sorted.
func Aliases(a Algorithm) []string {
	var out []string
	for name, target := range aliases {
		if target == a && name != string(a) {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

// Heuristics lists the registered heuristic names, auto first.
func Heuristics() []string {
	return []string{"auto", "manhattan", "euclidean", "octile", "null"}
}

// ParseHeuristic resolves a case-insensitive heuristic name. An empty name
// means auto.
func ParseHeuristic(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "auto", nil
	}
	for _, h := range Heuristics() {
		if n == h {
			return n, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// ResolveHeuristic returns the heuristic called name and its resolved name.
// auto picks octile for Conn8 mazes and manhattan otherwise.
func ResolveHeuristic(name string, conn maze.Connectivity) (problem.Heuristic[maze.Cell], string, error) {
	n, err := ParseHeuristic(name)
	if err != nil {
		return nil, "", err
	}
	if n == "auto" {
		n = "manhattan"
		if conn == maze.Conn8 {
			n = "octile"
		}
	}
	switch n {
	case "manhattan":
		return maze.Manhattan, n, nil
	case "euclidean":
		return maze.Euclidean, n, nil
	case "octile":
		return maze.Octile, n, nil
	default:
		return problem.NullHeuristic[maze.Cell], n, nil
	}
}

// Request describes one solver run.
type Request struct {
	Algorithm     Algorithm
	Heuristic     string // only used by AStar; see ResolveHeuristic
	MaxExpansions int    // 0 = no limit
	Explore       bool   // record expanded cells in Report.Explored
	Verify        bool   // replay the path against the maze before reporting
	Logger        *slog.Logger
}

// Report is the outcome of one run.
type Report struct {
	RunID       string           `json:"run_id" yaml:"run_id"`
	Algorithm   Algorithm        `json:"algorithm" yaml:"algorithm"`
	Heuristic   string           `json:"heuristic,omitempty" yaml:"heuristic,omitempty"`
	Found       bool             `json:"found" yaml:"found"`
	Actions     []problem.Action `json:"actions" yaml:"actions"`
	Steps       int              `json:"steps" yaml:"steps"`
	Cost        float64          `json:"cost" yaml:"cost"`
	Verified    bool             `json:"verified,omitempty" yaml:"verified,omitempty"`
	Expanded    int              `json:"expanded" yaml:"expanded"`
	Pushed      int              `json:"pushed" yaml:"pushed"`
	Stale       int              `json:"stale" yaml:"stale"`
	MaxFrontier int              `json:"max_frontier" yaml:"max_frontier"`
	Elapsed     time.Duration    `json:"elapsed_ns" yaml:"elapsed"`
	Error       string           `json:"error,omitempty" yaml:"error,omitempty"`
	Err         error            `json:"-" yaml:"-"`
	Path        []maze.Cell      `json:"-" yaml:"-"`
	Explored    []maze.Cell      `json:"-" yaml:"-"`
}

// Solve runs req.Algorithm on m. An unreachable goal is not an error: the
// report has Found == false. Errors are returned for unknown names, an
// exhausted expansion budget, or a path that fails verification.
func Solve(m *maze.Maze, req Request) (*Report, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	alg, err := ParseAlgorithm(string(req.Algorithm))
	if err != nil {
		return nil, err
	}
	logger := req.Logger
	if logger == nil {
		logger = slog.Default()
	}

	rep := &Report{RunID: uuid.NewString(), Algorithm: alg}
	logger = logger.With("run_id", rep.RunID, "algorithm", string(alg))

	var st search.Stats
	opts := []search.Option[maze.Cell]{
		search.WithStats[maze.Cell](&st),
		search.WithMaxExpansions[maze.Cell](req.MaxExpansions),
	}
	debug := logger.Enabled(context.Background(), slog.LevelDebug)
	if req.Explore || debug {
		opts = append(opts, search.WithOnExpand(func(n search.Node[maze.Cell]) error {
			if req.Explore {
				rep.Explored = append(rep.Explored, n.State)
			}
			if debug {
				logger.Debug("expand", "cell", n.State.String(), "depth", n.Depth(), "cost", n.Cost)
			}
			return nil
		}))
	}

	var run func() ([]problem.Action, error)
	switch alg {
	case DFS:
		run = func() ([]problem.Action, error) { return search.DepthFirst[maze.Cell](m, opts...) }
	case BFS:
		run = func() ([]problem.Action, error) { return search.BreadthFirst[maze.Cell](m, opts...) }
	case UCS:
		run = func() ([]problem.Action, error) { return search.UniformCost[maze.Cell](m, opts...) }
	case AStar:
		h, name, err := ResolveHeuristic(req.Heuristic, m.Conn())
		if err != nil {
			return nil, err
		}
		rep.Heuristic = name
		run = func() ([]problem.Action, error) { return search.AStar(m, h, opts...) }
	}

	start := time.Now()
	actions, err := run()
	rep.Elapsed = time.Since(start)
	rep.Expanded, rep.Pushed, rep.Stale, rep.MaxFrontier = st.Expanded, st.Pushed, st.Stale, st.MaxFrontier

	switch {
	case errors.Is(err, search.ErrNoSolution):
		logger.Info("no solution", "expanded", rep.Expanded, "elapsed", rep.Elapsed)
		return rep, nil
	case err != nil:
		return rep, err
	}

	rep.Found = true
	rep.Actions = actions
	rep.Steps = len(actions)
	if rep.Path, err = m.Trace(actions); err != nil {
		return rep, err
	}
	if req.Verify {
		if _, rep.Cost, err = problem.Replay[maze.Cell](m, actions); err != nil {
			return rep, fmt.Errorf("solver: %s path failed verification: %w", alg, err)
		}
		rep.Verified = true
	} else if rep.Cost, err = problem.PathCost[maze.Cell](m, actions); err != nil {
		return rep, err
	}
	logger.Info("solution found", "steps", rep.Steps, "cost", rep.Cost, "expanded", rep.Expanded, "elapsed", rep.Elapsed)

	return rep, nil
}
