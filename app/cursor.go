package app

// Cursor is a bounded single-index selection over a list of rows. A cursor
// over zero rows has no index; otherwise the index is always within
// [0, length-1]. Cursor is a value type and every method returns a new cursor.
type Cursor struct {
	length int
	index  int
	valid  bool
}

// NewCursor returns a cursor over n rows positioned on the first row
func NewCursor(n int) Cursor {
	return Cursor{}.SetLength(n)
}

// Len returns the number of rows
func (c Cursor) Len() int {
	return c.length
}

// Index returns the selected row and false if there is none
func (c Cursor) Index() (int, bool) {
	if !c.valid {
		return 0, false
	}
	return c.index, true
}

// SetLength changes the number of rows, re-clamping the index
func (c Cursor) SetLength(n int) Cursor {
	if n <= 0 {
		return Cursor{}
	}
	c.length = n
	switch {
	case !c.valid:
		c.index, c.valid = 0, true
	case c.index >= n:
		c.index = n - 1
	}
	return c
}

// Next moves to the following row, stopping at the last
func (c Cursor) Next() Cursor {
	if c.valid && c.index < c.length-1 {
		c.index++
	}
	return c
}

// Prev moves to the preceding row, stopping at the first
func (c Cursor) Prev() Cursor {
	if c.valid && c.index > 0 {
		c.index--
	}
	return c
}

// Set moves to row i, clamped to the valid range
func (c Cursor) Set(i int) Cursor {
	if !c.valid {
		return c
	}
	switch {
	case i < 0:
		i = 0
	case i >= c.length:
		i = c.length - 1
	}
	c.index = i
	return c
}
