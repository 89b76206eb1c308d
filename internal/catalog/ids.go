package catalog

import "time"

// IDGenerator hands out product ids derived from the wall clock in
// milliseconds. When the clock has not moved past the previous id the next
// id is last+1, so ids stay strictly increasing under rapid submissions.
// It is not safe for concurrent use; the Store serializes access.
type IDGenerator struct {
	now  func() time.Time
	last int64
}

// NewIDGenerator creates a generator reading time from now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns a fresh id.
func (g *IDGenerator) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an id that was assigned elsewhere (e.g. a seed product)
// so Next never returns it.
func (g *IDGenerator) Observe(id int64) {
	if id > g.last {
		g.last = id
	}
}
