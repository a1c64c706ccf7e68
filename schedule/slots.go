package schedule

import "github.com/cpmech/gaschedule/domain"

// cell holds the (small) multiset of classes occupying one (day, time,
// room) slot. Feasible solutions average at most one occupant per cell,
// so a cell stores up to two occupants inline before spilling to a
// slice, per §9 Design Notes ("inline occupancy for 0/1/2 entries
// before spilling").
type cell struct {
	a, b *domain.CourseClass
	rest []*domain.CourseClass
}

func (c *cell) add(cc *domain.CourseClass) {
	switch {
	case c.a == nil:
		c.a = cc
	case c.b == nil:
		c.b = cc
	default:
		c.rest = append(c.rest, cc)
	}
}

// remove deletes every occurrence of cc from the cell. Idempotent: a
// missing cc is a no-op (§4.1 repair: "remove c from slots... (all
// occurrences; idempotent)").
func (c *cell) remove(cc *domain.CourseClass) {
	if c.a == cc {
		c.a = nil
	}
	if c.b == cc {
		c.b = nil
	}
	if len(c.rest) > 0 {
		kept := c.rest[:0]
		for _, o := range c.rest {
			if o != cc {
				kept = append(kept, o)
			}
		}
		c.rest = kept
	}
}

func (c *cell) len() int {
	n := 0
	if c.a != nil {
		n++
	}
	if c.b != nil {
		n++
	}
	return n + len(c.rest)
}

func (c *cell) occupants() []*domain.CourseClass {
	if c.len() == 0 {
		return nil
	}
	out := make([]*domain.CourseClass, 0, c.len())
	if c.a != nil {
		out = append(out, c.a)
	}
	if c.b != nil {
		out = append(out, c.b)
	}
	out = append(out, c.rest...)
	return out
}
