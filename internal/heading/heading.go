// Package heading defines the four compass directions a patrolling point can
// face, together with the turning and displacement rules of the walk.
package heading

import "fmt"

// Heading is one of the four compass directions, in clockwise order.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
)

// Count is the number of distinct headings.
const Count = 4

// All returns every heading in clockwise order starting at Up.
func All() []Heading {
	return []Heading{Up, Right, Down, Left}
}

// TurnRight rotates the heading 90 degrees clockwise.
func (h Heading) TurnRight() Heading {
	return (h + 1) % Count
}

// Displacement returns the (dx, dy) step for the heading. y grows downward.
func (h Heading) Displacement() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	panic(fmt.Sprintf("heading: invalid value %d", uint8(h)))
}

// Index maps the heading to a stable array index in [0, Count).
func (h Heading) Index() int {
	return int(h)
}

// Marker returns the map character that encodes the heading.
func (h Heading) Marker() rune {
	switch h {
	case Up:
		return '^'
	case Right:
		return '>'
	case Down:
		return 'v'
	case Left:
		return '<'
	}
	return '?'
}

// FromMarker decodes a start marker character. ok is false for any rune that
// is not one of ^ > v <.
func FromMarker(r rune) (h Heading, ok bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("heading(%d)", uint8(h))
}
