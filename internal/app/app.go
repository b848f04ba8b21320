package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/specialistvlad/patrolgrid/internal/grid"
	"github.com/specialistvlad/patrolgrid/internal/puzzle"
	"github.com/specialistvlad/patrolgrid/internal/search"
	"github.com/specialistvlad/patrolgrid/internal/view"
)

// Viewer displays a parsed map and its part-1 route.
type Viewer func(ctx context.Context, p *puzzle.Puzzle, route *grid.Grid) error

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	runID      string
	progress   *search.Progress
	viewer     Viewer
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Answers are written to
// outW and logs to logW.
func NewApp(outW, logW io.Writer, config *Config) *App {
	runID := uuid.NewString()
	logger := newLogger(config.LogLevel, config.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   config,
		runID:    runID,
		progress: &search.Progress{},
		viewer:   view.Show,
	}
}

// RunID identifies this run in logs.
func (a *App) RunID() string {
	return a.runID
}

// Progress reports how far the obstruction search has got.
func (a *App) Progress() *search.Progress {
	return a.progress
}

// SetViewer replaces the terminal view, primarily for testing.
func (a *App) SetViewer(v Viewer) {
	a.viewer = v
}
