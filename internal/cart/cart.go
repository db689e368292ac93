// Package cart models the per-session shopping cart as a set of product
// ids. Toggle is insert-if-absent / remove-if-present, so applying it
// twice always restores the original membership.
package cart

import "sort"

type Cart struct {
	ids map[int64]struct{}
}

func New(ids ...int64) Cart {
	c := Cart{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		c.ids[id] = struct{}{}
	}
	return c
}

// Toggle flips membership of id and reports whether the id is in the
// cart afterwards.
func (c *Cart) Toggle(id int64) bool {
	if c.ids == nil {
		c.ids = make(map[int64]struct{}, 1)
	}
	if _, ok := c.ids[id]; ok {
		delete(c.ids, id)
		return false
	}
	c.ids[id] = struct{}{}
	return true
}

func (c Cart) Has(id int64) bool {
	_, ok := c.ids[id]
	return ok
}

func (c Cart) Len() int { return len(c.ids) }

// IDs returns the cart contents sorted ascending, for a stable wire
// encoding at the session boundary.
func (c Cart) IDs() []int64 {
	out := make([]int64, 0, len(c.ids))
	for id := range c.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
