// Package cursor tracks a cursor and scroll offset over a list whose length
// changes as the catalogue is filtered or the playlist is edited.
package cursor

// Cursor is a position in a scrollable list. List length and viewport
// height are passed to each call since both change between renders.
type Cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept visible above/below the cursor
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list, and scrolls to keep
// it visible. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart moves the cursor to the first row.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves the cursor to the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}

	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back inside a list that shrank and
// reports whether it moved.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.Reset()
		return changed
	}

	old := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
	return c.pos != old
}

// VisibleRange returns the visible rows as [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	end = min(c.offset+height, listLen)
	return start, end
}

// Reset moves the cursor back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleKey applies the common list navigation keys and reports whether
// key was one of them: j/down, k/up, g/home, G/end, ctrl+d, ctrl+u.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.JumpStart()
	case "G", "end":
		c.JumpEnd(listLen, height)
	case "ctrl+d":
		c.Move(height/2, listLen, height)
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
