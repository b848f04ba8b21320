package search

import (
	"context"
	"runtime"
	"time"

	"github.com/specialistvlad/patrolgrid/internal/ctxlog"
	"github.com/specialistvlad/patrolgrid/internal/grid"
	"github.com/specialistvlad/patrolgrid/internal/heading"
	"github.com/specialistvlad/patrolgrid/internal/simulator"
	"golang.org/x/sync/errgroup"
)

const defaultBatchSize = 64

// Options tunes the worker pool.
type Options struct {
	// Workers is the pool size. Zero or negative means runtime.NumCPU().
	Workers int
	// BatchSize is how many candidates a worker takes at once. Zero or
	// negative means a default of 64.
	BatchSize int
	// Progress, when set, is updated as batches complete.
	Progress *Progress
}

// Candidates lists the row-major indices of every free cell except start.
func Candidates(g *grid.Grid, start grid.Point) []int {
	startIdx := g.Index(start.X, start.Y)
	out := make([]int, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		if i != startIdx && !g.At(i) {
			out = append(out, i)
		}
	}
	return out
}

// Count returns how many candidate cells make the walk from (start, h) loop
// once an obstacle is placed on them.
func Count(ctx context.Context, g *grid.Grid, start grid.Point, h heading.Heading, opts Options) (int, error) {
	return CountIndices(ctx, g, start, h, Candidates(g, start), opts)
}

// CountIndices is Count restricted to the given cell indices, evaluated in
// the given order. Indices that are not candidates, and repeats, are
// ignored. g is never modified.
func CountIndices(ctx context.Context, g *grid.Grid, start grid.Point, h heading.Heading, indices []int, opts Options) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	logger := ctxlog.FromContext(ctx)

	startIdx := g.Index(start.X, start.Y)
	seen := make([]bool, g.Len())
	valid := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= g.Len() || i == startIdx || g.At(i) || seen[i] {
			continue
		}
		seen[i] = true
		valid = append(valid, i)
	}

	progress := opts.Progress
	if progress == nil {
		progress = &Progress{}
	}
	progress.start(len(valid))
	if len(valid) == 0 {
		logger.Debug("No obstruction candidates, skipping search.")
		return 0, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if batches := (len(valid) + batchSize - 1) / batchSize; workers > batches {
		workers = batches
	}

	logger.Debug("Obstruction search started.", "candidates", len(valid), "workers", workers, "batch_size", batchSize)
	began := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	batches := make(chan []int)
	counts := make([]int, workers)

	eg.Go(func() error {
		defer close(batches)
		for lo := 0; lo < len(valid); lo += batchSize {
			hi := min(lo+batchSize, len(valid))
			select {
			case batches <- valid[lo:hi]:
			case <-egCtx.Done():
				return egCtx.Err()
			}
		}
		return nil
	})

	for id := range workers {
		eg.Go(func() error {
			n, err := worker(egCtx, g, start, h, batches, progress)
			counts[id] = n
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Debug("Obstruction search aborted.", "error", err, "evaluated", progress.Done())
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	logger.Debug("Obstruction search finished.", "looping", total, "duration", time.Since(began))
	return total, nil
}

// worker evaluates batches until the channel is drained, returning how many
// of its candidates looped.
func worker(ctx context.Context, original *grid.Grid, start grid.Point, h heading.Heading, batches <-chan []int, progress *Progress) (int, error) {
	scratch := original.Clone()
	tracker := simulator.NewTracker(original.Width(), original.Height())

	looping := 0
	for batch := range batches {
		if err := ctx.Err(); err != nil {
			return looping, err
		}
		for _, i := range batch {
			scratch.SetAt(i, true)
			if tracker.Run(scratch, start, h).Outcome == simulator.Looped {
				looping++
			}
			scratch.SetAt(i, false)
		}
		progress.add(len(batch))
	}
	return looping, nil
}
