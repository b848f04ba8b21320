// Package simulator walks a patrolling point across a grid.
//
// The walk is a deterministic state machine over poses (position, heading).
// Each iteration records the current pose and looks one cell ahead: leaving
// the grid ends the walk, an obstacle turns the point right in place, and a
// free cell moves it forward.
//
// Two modes are provided. Coverage mode (Trace, Coverage) answers how many
// distinct cells are visited before the point leaves the grid. Loop-detection
// mode (DetectLoop, Tracker.Run) answers whether the point ever returns to a
// pose it already held, which means it will never leave.
//
// A pose can only be recorded once per walk, so no walk takes more than
// width*height*4 transitions before it either exits or is declared a loop.
package simulator
