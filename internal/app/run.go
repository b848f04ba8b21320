package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/patrolgrid/internal/ctxlog"
	"github.com/specialistvlad/patrolgrid/internal/grid"
	"github.com/specialistvlad/patrolgrid/internal/puzzle"
	"github.com/specialistvlad/patrolgrid/internal/search"
	"github.com/specialistvlad/patrolgrid/internal/simulator"
)

// Answers holds the computed results. A part that was not requested is
// reported as not solved.
type Answers struct {
	Part1   int
	Part2   int
	Solved1 bool
	Solved2 bool
}

// Run executes the main application logic: load the map, solve the requested
// parts and print them to the output writer.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthcheckServer(ctx, a.config.HealthcheckPort); err != nil {
			return fmt.Errorf("failed to start health check server: %w", err)
		}
		defer a.closeHealthcheckServer(ctx)
	}

	began := time.Now()
	p, err := puzzle.Load(a.config.InputPath)
	if err != nil {
		return err
	}
	a.logger.Info("Parsed input.",
		"path", a.config.InputPath,
		"width", p.Grid.Width(),
		"height", p.Grid.Height(),
		"start", p.Start.String(),
		"heading", p.Heading.String(),
		"duration", time.Since(began),
	)

	answers, err := a.Solve(ctx, p)
	if err != nil {
		return err
	}

	if answers.Solved1 {
		fmt.Fprintf(a.outW, "Part 1: %d\n", answers.Part1)
	}
	if answers.Solved2 {
		fmt.Fprintf(a.outW, "Part 2: %d\n", answers.Part2)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Solve answers the parts selected by the configuration for an already
// parsed map.
func (a *App) Solve(ctx context.Context, p *puzzle.Puzzle) (Answers, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	var answers Answers

	if a.config.Part != 2 || a.config.View {
		began := time.Now()
		route, err := simulator.Trace(p.Grid, p.Start, p.Heading)
		if err != nil {
			return answers, fmt.Errorf("part 1: %w", err)
		}
		if a.config.Part != 2 {
			answers.Part1 = route.Count()
			answers.Solved1 = true
			a.logger.Info("Part 1 solved.", "answer", answers.Part1, "duration", time.Since(began))
		}
		if a.config.View {
			if err := a.show(ctx, p, route); err != nil {
				return answers, err
			}
		}
	}

	if a.config.Part != 1 {
		began := time.Now()
		n, err := search.Count(ctx, p.Grid, p.Start, p.Heading, search.Options{
			Workers:  a.config.WorkerCount,
			Progress: a.progress,
		})
		if err != nil {
			return answers, fmt.Errorf("part 2: %w", err)
		}
		answers.Part2 = n
		answers.Solved2 = true
		a.logger.Info("Part 2 solved.", "answer", n, "candidates", a.progress.Total(), "duration", time.Since(began))
	}

	return answers, nil
}

func (a *App) show(ctx context.Context, p *puzzle.Puzzle, route *grid.Grid) error {
	a.logger.Debug("Opening route view.")
	if err := a.viewer(ctx, p, route); err != nil {
		return fmt.Errorf("route view failed: %w", err)
	}
	return nil
}
