// Package grid provides the fixed-size boolean map the patrol walks on.
//
// Cells are stored row-major in a single flat slice, so copying a grid is one
// slice copy. A true cell is an obstacle. Coordinates outside the grid are a
// programming error: Get and Set panic instead of returning an error, and
// callers that need a bounds test use Contains.
package grid
