package grid

import (
	"fmt"
	"strings"
)

// Point is an integer grid coordinate. Y grows downward.
type Point struct {
	X int
	Y int
}

// Add returns the point shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a width x height map of boolean cells.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// New returns an all-free grid of the given size.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// FromCells adopts a row-major cell slice. The slice is not copied.
func FromCells(width, height int, cells []bool) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", width, height))
	}
	if len(cells) != width*height {
		panic(fmt.Sprintf("grid: %d cells do not fill %dx%d", len(cells), width, height))
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }

// Len is the number of cells, width*height.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps an in-bounds coordinate to its row-major index.
func (g *Grid) Index(x, y int) int {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) out of bounds for %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Coord is the inverse of Index.
func (g *Grid) Coord(i int) (x, y int) {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("grid: index %d out of range [0,%d)", i, len(g.cells)))
	}
	return i % g.width, i / g.width
}

// Get reports whether the cell at (x, y) is set.
func (g *Grid) Get(x, y int) bool {
	return g.cells[g.Index(x, y)]
}

// Set changes a single cell.
func (g *Grid) Set(x, y int, value bool) {
	g.cells[g.Index(x, y)] = value
}

// At and SetAt address a cell by row-major index.
func (g *Grid) At(i int) bool { return g.cells[i] }

func (g *Grid) SetAt(i int, value bool) { g.cells[i] = value }

// Count returns the number of set cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// CopyFrom overwrites g with the contents of src. Both grids must have the
// same dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.width != src.width || g.height != src.height {
		panic(fmt.Sprintf("grid: cannot copy %dx%d into %dx%d", src.width, src.height, g.width, g.height))
	}
	copy(g.cells, src.cells)
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders obstacles as '#' and free cells as '.', one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		row := g.cells[y*g.width : (y+1)*g.width]
		for _, c := range row {
			if c {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
