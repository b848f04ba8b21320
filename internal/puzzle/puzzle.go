// Package puzzle turns the textual patrol map into a grid and a start pose.
package puzzle

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/patrolgrid/internal/grid"
	"github.com/specialistvlad/patrolgrid/internal/heading"
)

// ErrMalformedInput is the sentinel wrapped by every MalformedInputError.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError describes why a map could not be parsed. Line and
// Column are 1-based and refer to the non-blank lines of the input; they are
// zero when the problem is not tied to a position.
type MalformedInputError struct {
	Line   int
	Column int
	Char   rune
	Reason string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Char != 0:
		return fmt.Sprintf("malformed input: line %d column %d: %s %q", e.Line, e.Column, e.Reason, e.Char)
	case e.Line != 0:
		return fmt.Sprintf("malformed input: line %d: %s", e.Line, e.Reason)
	default:
		return "malformed input: " + e.Reason
	}
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// Puzzle is a parsed map: the obstacle grid and where the patrol begins.
type Puzzle struct {
	Grid    *grid.Grid
	Start   grid.Point
	Heading heading.Heading
}

// Load reads and parses the map stored at path.
func Load(path string) (*Puzzle, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	p, err := Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return p, nil
}

// Parse builds a Puzzle from map text. Each line is trimmed and blank lines
// are skipped; the remaining lines must all have the same length and contain
// exactly one start marker.
func Parse(content string) (*Puzzle, error) {
	var (
		cells    []bool
		width    int
		height   int
		start    grid.Point
		facing   heading.Heading
		hasStart bool
	)

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		height++

		runes := []rune(line)
		if height == 1 {
			width = len(runes)
		} else if len(runes) != width {
			return nil, &MalformedInputError{
				Line:   height,
				Reason: fmt.Sprintf("length %d differs from first line length %d", len(runes), width),
			}
		}

		y := height - 1
		for x, c := range runes {
			switch c {
			case '.':
				cells = append(cells, false)
			case '#':
				cells = append(cells, true)
			default:
				h, ok := heading.FromMarker(c)
				if !ok {
					return nil, &MalformedInputError{Line: height, Column: x + 1, Char: c, Reason: "unexpected character"}
				}
				if hasStart {
					return nil, &MalformedInputError{
						Line: height, Column: x + 1, Char: c,
						Reason: fmt.Sprintf("second start marker, first at %s", start),
					}
				}
				cells = append(cells, false)
				start = grid.Point{X: x, Y: y}
				facing = h
				hasStart = true
			}
		}
	}

	if height == 0 {
		return nil, &MalformedInputError{Reason: "empty map"}
	}
	if !hasStart {
		return nil, &MalformedInputError{Reason: "no start marker (one of ^ > v <)"}
	}

	return &Puzzle{
		Grid:    grid.FromCells(width, height, cells),
		Start:   start,
		Heading: facing,
	}, nil
}
