package expr

// StageCounter hands out monotonically increasing stage indices for
// marking intermediate variables during multi-stage composition (§4.7).
// No package in this module calls it: semantics.Translate marks every
// read as Before and every write as After. It is not safe for concurrent
// use.
type StageCounter struct {
	next int
}

// Next returns the next stage index, starting at 0.
func (c *StageCounter) Next() int {
	n := c.next
	c.next++
	return n
}

// Peek returns the index Next would return without consuming it.
func (c *StageCounter) Peek() int {
	return c.next
}
