package solver

import (
	"context"

	"github.com/katalvlaran/lvsearch/maze"
	"golang.org/x/sync/errgroup"
)

// Compare runs every registered algorithm on m concurrently, using base for
// all other request fields. Reports come back in Algorithms() order.
// A run that fails after starting its search, such as one that exhausts
// its expansion budget, keeps its row with Err and Error set. Request
// errors and cancellation abort the whole comparison.
// Sharing m is safe because a Maze is immutable and its Successors is
// read-only. A search cannot be interrupted once started; ctx is only
// checked before each run begins.
func Compare(ctx context.Context, m *maze.Maze, base Request) ([]*Report, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	algs := Algorithms()
	reports := make([]*Report, len(algs))

	g, gctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		i, alg := i, alg // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			req := base
			req.Algorithm = alg
			rep, err := Solve(m, req)
			if rep == nil {
				return err
			}
			if err != nil {
				rep.Err, rep.Error = err, err.Error()
			}
			reports[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
