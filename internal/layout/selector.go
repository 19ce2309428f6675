package layout

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SelectBest scans every row of hist and returns the largest landscape or
// square rectangle. On equal area the later row wins. It returns the empty
// Rectangle when hist has no rows or no row yields an eligible candidate.
func SelectBest(hist Histograms) Rectangle {
	best := Rectangle{}
	for i, row := range hist {
		best = preferred(best, FindLargest(i+1, row))
	}
	return best
}

// SelectBestConcurrent is SelectBest with the per-row scans spread over up to
// workers goroutines. Candidates are folded in row order afterwards, so the
// result is identical to SelectBest. workers <= 0 means GOMAXPROCS.
func SelectBestConcurrent(ctx context.Context, hist Histograms, workers int) (Rectangle, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	candidates := make([]Rectangle, len(hist))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range hist {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			candidates[i] = FindLargest(i+1, hist[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Rectangle{}, err
	}

	best := Rectangle{}
	for _, c := range candidates {
		best = preferred(best, c)
	}
	return best, nil
}

// preferred folds one row candidate into the current best. Portrait
// candidates are skipped; ties favour the candidate (the later row).
func preferred(current, candidate Rectangle) Rectangle {
	if !candidate.Landscape() {
		return current
	}
	if candidate.Area >= current.Area {
		return candidate
	}
	return current
}
