// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and turns non-breaking spaces into plain spaces. Catalogue text comes from
// hand-edited JSON and may carry any of these.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == ' ':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// needsSanitize reports whether s has bytes Sanitize would change.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) && s[i+1] == 0xa0 {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens a sanitized s to maxWidth cells, ending in "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s fitted to exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row places left and right at the edges of width with at least one space
// between them.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine creates an empty line (spaces) of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
