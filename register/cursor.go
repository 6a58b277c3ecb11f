package register

// Cursor is a circular index over the range [First, Limit).
type Cursor struct {
	First int // First index of the range.
	Limit int // One past the last index of the range.
	Pos   int // Current index.
}

// NewCursor returns a cursor positioned at the start of [first, limit).
func NewCursor(first, limit int) Cursor {
	if limit <= first {
		panic("cursor range is empty")
	}

	return Cursor{First: first, Limit: limit, Pos: first}
}

// Advance moves the cursor forward, wrapping to First at Limit.
func (c *Cursor) Advance() {
	c.Pos++
	if c.Pos >= c.Limit {
		c.Pos = c.First
	}
}

// Retreat moves the cursor backward, wrapping to Limit-1 below First.
func (c *Cursor) Retreat() {
	c.Pos--
	if c.Pos < c.First {
		c.Pos = c.Limit - 1
	}
}

// Sync moves the cursor to the position of other.
func (c *Cursor) Sync(other Cursor) {
	c.Pos = other.Pos
}

// Reset moves the cursor back to First.
func (c *Cursor) Reset() {
	c.Pos = c.First
}
