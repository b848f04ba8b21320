// Package search counts the single-obstacle placements that trap the patrol
// in a loop.
//
// Every free cell other than the start is a candidate. Candidates are
// independent, so the search is a map-then-reduce over the candidate index
// range: a pool of workers pulls batches of indices from a channel, each
// worker tests its candidates on a private copy of the grid, and the
// coordinator sums the per-worker counts once all workers have finished.
//
// Workers never write shared memory on the hot path. Each one owns a scratch
// grid (the original plus the candidate obstacle, reverted after every test)
// and a simulator.Tracker, so the original grid is only ever read.
package search
