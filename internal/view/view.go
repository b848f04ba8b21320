// Package view draws a patrol map and its route in the terminal.
package view

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/specialistvlad/patrolgrid/internal/grid"
	"github.com/specialistvlad/patrolgrid/internal/puzzle"
)

var (
	freeStyle     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	routeStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	startStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle   = tcell.StyleDefault.Reverse(true)
)

// Draw paints the map onto s: obstacles as '#', free cells as '.', visited
// cells as 'X' and the start as its heading marker. A status line goes below
// the map. route may be nil.
func Draw(s tcell.Screen, p *puzzle.Puzzle, route *grid.Grid) {
	s.Clear()
	g := p.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r, style := '.', freeStyle
			switch {
			case x == p.Start.X && y == p.Start.Y:
				r, style = p.Heading.Marker(), startStyle
			case g.Get(x, y):
				r, style = '#', obstacleStyle
			case route != nil && route.Get(x, y):
				r, style = 'X', routeStyle
			}
			s.SetContent(x, y, r, nil, style)
		}
	}

	status := fmt.Sprintf(" %dx%d map", g.Width(), g.Height())
	if route != nil {
		status += fmt.Sprintf(", route covers %d cells", route.Count())
	}
	status += " | q: quit "
	for i, r := range status {
		s.SetContent(i, g.Height()+1, r, nil, statusStyle)
	}
	s.Show()
}

// Run draws the map and blocks until the user quits, ctx is done, or the
// screen is finalized. Resizes redraw the map.
func Run(ctx context.Context, s tcell.Screen, p *puzzle.Puzzle, route *grid.Grid) error {
	Draw(s, p, route)

	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
				Draw(s, p, route)
			}
		}
	}
}

// Show opens the terminal, runs the view and restores the terminal.
func Show(ctx context.Context, p *puzzle.Puzzle, route *grid.Grid) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer s.Fini()

	return Run(ctx, s, p, route)
}
