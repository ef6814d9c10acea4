package facet

// Counter maintains the active-filter count incrementally from the
// notifications sent to the owner, avoiding a full recount per render.
// It must be seeded with the owner's selection and then observe every
// notification the owner applies. The zero value counts from an empty
// selection.
type Counter struct {
	perCategory map[string]int
	total       int
}

// NewCounter seeds a counter from an existing selection.
func NewCounter(s Selection) *Counter {
	c := &Counter{perCategory: make(map[string]int, len(s))}
	for id, values := range s {
		c.perCategory[id] = len(values)
		c.total += len(values)
	}
	return c
}

// Observe updates the count for a notification. Nil notifications are ignored.
func (c *Counter) Observe(n Notification) {
	switch n := n.(type) {
	case Change:
		if c.perCategory == nil {
			c.perCategory = make(map[string]int)
		}
		c.total += len(n.Values) - c.perCategory[n.CategoryID]
		c.perCategory[n.CategoryID] = len(n.Values)
	case Clear:
		clear(c.perCategory)
		c.total = 0
	}
}

// Count returns the running active-filter count.
func (c *Counter) Count() int {
	return c.total
}

// HasActive reports whether the running count is non-zero.
func (c *Counter) HasActive() bool {
	return c.total > 0
}

// CategoryCount returns the running count for one category.
func (c *Counter) CategoryCount(categoryID string) int {
	return c.perCategory[categoryID]
}
