// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of items to keep visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	PanelOverhead = BorderHeight + HeaderHeight

	// BuilderWidthDivisor gives the builder panel 1/BuilderWidthDivisor of
	// the width when it is shown.
	BuilderWidthDivisor = 3

	// CardHeight is the number of lines one clip card takes.
	CardHeight = 3
)
