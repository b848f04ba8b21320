package simulator

import (
	"errors"

	"github.com/specialistvlad/patrolgrid/internal/grid"
	"github.com/specialistvlad/patrolgrid/internal/heading"
)

// ErrNonTerminatingWalk is returned by coverage mode when the walk on the
// given grid never leaves it.
var ErrNonTerminatingWalk = errors.New("walk never leaves the grid")

// Outcome is the terminal state of a loop-detection walk.
type Outcome int

const (
	// Exited means the point stepped outside the grid.
	Exited Outcome = iota
	// Looped means the point was about to repeat a pose.
	Looped
)

func (o Outcome) String() string {
	if o == Looped {
		return "looped"
	}
	return "exited"
}

// Pose is the point's position and heading at one step of the walk.
type Pose struct {
	Pos     grid.Point
	Heading heading.Heading
}

// Result reports how a loop-detection walk ended and how many transitions
// (moves plus turns) it took.
type Result struct {
	Outcome Outcome
	Steps   int
}

// Tracker holds the directional visited set for one walk at a time. It is
// reused across walks on grids of the same size and is not safe for
// concurrent use.
type Tracker struct {
	width  int
	height int
	seen   [][heading.Count]bool
}

// NewTracker allocates a tracker for width x height grids.
func NewTracker(width, height int) *Tracker {
	return &Tracker{
		width:  width,
		height: height,
		seen:   make([][heading.Count]bool, width*height),
	}
}

func (t *Tracker) reset() {
	clear(t.seen)
}

// visit records a pose and reports whether it had been recorded before.
func (t *Tracker) visit(p Pose) bool {
	rec := &t.seen[p.Pos.Y*t.width+p.Pos.X]
	if rec[p.Heading.Index()] {
		return true
	}
	rec[p.Heading.Index()] = true
	return false
}

// Run walks g from the start pose in loop-detection mode.
func (t *Tracker) Run(g *grid.Grid, start grid.Point, h heading.Heading) Result {
	if g.Width() != t.width || g.Height() != t.height {
		panic("simulator: tracker size does not match grid")
	}
	t.reset()

	var res Result
	walk(g, Pose{Pos: start, Heading: h}, func(p Pose) bool {
		if t.visit(p) {
			res.Outcome = Looped
			return false
		}
		return true
	}, &res.Steps)
	return res
}

// DetectLoop runs a single loop-detection walk with a fresh tracker.
func DetectLoop(g *grid.Grid, start grid.Point, h heading.Heading) Result {
	return NewTracker(g.Width(), g.Height()).Run(g, start, h)
}

// Trace walks g in coverage mode and returns the set of visited cells as a
// grid of the same size. The walk is expected to leave the grid; if it loops
// instead, ErrNonTerminatingWalk is returned.
func Trace(g *grid.Grid, start grid.Point, h heading.Heading) (*grid.Grid, error) {
	visited := grid.New(g.Width(), g.Height())
	t := NewTracker(g.Width(), g.Height())

	looped := false
	var steps int
	walk(g, Pose{Pos: start, Heading: h}, func(p Pose) bool {
		if t.visit(p) {
			looped = true
			return false
		}
		visited.Set(p.Pos.X, p.Pos.Y, true)
		return true
	}, &steps)

	if looped {
		return nil, ErrNonTerminatingWalk
	}
	return visited, nil
}

// Coverage returns the number of distinct cells visited before the walk
// leaves the grid.
func Coverage(g *grid.Grid, start grid.Point, h heading.Heading) (int, error) {
	visited, err := Trace(g, start, h)
	if err != nil {
		return 0, err
	}
	return visited.Count(), nil
}

// walk drives the state machine. record is called with every pose before the
// point acts on it and stops the walk by returning false. steps counts the
// transitions taken.
func walk(g *grid.Grid, p Pose, record func(Pose) bool, steps *int) {
	if !g.Contains(p.Pos.X, p.Pos.Y) {
		panic("simulator: start " + p.Pos.String() + " outside grid")
	}
	for record(p) {
		dx, dy := p.Heading.Displacement()
		next := p.Pos.Add(dx, dy)
		if !g.Contains(next.X, next.Y) {
			return
		}
		*steps++
		if g.Get(next.X, next.Y) {
			p.Heading = p.Heading.TurnRight()
			continue
		}
		p.Pos = next
	}
}
