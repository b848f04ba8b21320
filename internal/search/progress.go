package search

import (
	"fmt"
	"sync/atomic"
)

// Progress exposes how far a running search has got. The zero value is ready
// to use and safe to read from other goroutines while the search runs.
type Progress struct {
	done  atomic.Int64
	total atomic.Int64
}

func (p *Progress) start(total int) {
	p.done.Store(0)
	p.total.Store(int64(total))
}

func (p *Progress) add(n int) {
	p.done.Add(int64(n))
}

// Done is the number of candidates evaluated so far.
func (p *Progress) Done() int64 { return p.done.Load() }

// Total is the number of candidates the current search will evaluate.
func (p *Progress) Total() int64 { return p.total.Load() }

func (p *Progress) String() string {
	return fmt.Sprintf("%d/%d", p.Done(), p.Total())
}
