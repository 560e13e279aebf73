package builderpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/announcer/internal/ui"
	"github.com/llehouerou/announcer/internal/ui/render"
	"github.com/llehouerou/announcer/internal/ui/styles"
)

// EmptyHint is shown while nothing is staged.
const EmptyHint = "Add variants from the clip cards"

// View renders the builder panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderEntries(innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader shows the entry count and, during a run, the position.
func (m Model) renderHeader(innerWidth int) string {
	n := m.staging.Len()
	right := humanize.Comma(int64(n)) + " " + plural(n, "clip", "clips")
	if pos := m.staging.Position(); pos >= 0 {
		right = humanize.Comma(int64(pos+1)) + "/" + right
	}
	return headerStyle().Render(render.Row("Playlist", right, innerWidth))
}

func (m Model) renderEntries(innerWidth, listHeight int) string {
	entries := m.staging.Entries()
	lines := make([]string, 0, listHeight)

	if len(entries) == 0 && listHeight > 0 {
		lines = append(lines, hintStyle().Render(render.TruncateAndPad(EmptyHint, innerWidth)))
	}

	start, end := m.cursor.VisibleRange(len(entries), listHeight)
	playing := m.staging.Position()
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderEntry(entries[idx].Transcription, idx, playing, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(text string, idx, playing, width int) string {
	prefix := "  "
	if idx == playing {
		if m.staging.Playing() {
			prefix = playingSymbol + " "
		} else {
			prefix = stalledSymbol + " "
		}
	}
	line := prefix + render.TruncateAndPad(text, width-2)
	return m.entryStyle(idx, playing).Render(line)
}

func (m Model) entryStyle(idx, playing int) lipgloss.Style {
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isPlaying := idx == playing
	isPlayed := playing >= 0 && idx < playing

	switch {
	case isCursor && isPlaying:
		return cursorStyle().Inherit(playingStyle())
	case isCursor:
		return cursorStyle()
	case isPlaying:
		return playingStyle()
	case isPlayed:
		return playedStyle()
	default:
		return entryStyle()
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
