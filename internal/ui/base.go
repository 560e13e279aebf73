package ui

// Base holds the focus and size every panel tracks. Embed it in component
// models.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the rows left for list content after overhead.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
