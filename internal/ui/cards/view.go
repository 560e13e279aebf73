package cards

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/announcer/internal/mode"
	"github.com/llehouerou/announcer/internal/ui"
	"github.com/llehouerou/announcer/internal/ui/render"
	"github.com/llehouerou/announcer/internal/ui/styles"
)

// NoMatches is shown when the filter hides every card.
const NoMatches = "No clips match"

// View renders the visible cards that fit the panel.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	innerHeight := m.ListHeight(ui.BorderHeight)
	visible := m.Visible()

	var lines []string
	if len(visible) == 0 {
		lines = append(lines, styles.T().S().Muted.Render(render.TruncateAndPad(NoMatches, innerWidth)))
	} else {
		start, end := m.cursor.VisibleRange(len(visible), m.pageSize())
		for i := start; i < end; i++ {
			lines = append(lines, m.renderCard(visible[i], i == m.cursor.Pos(), innerWidth)...)
		}
	}
	for len(lines) < innerHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) renderCard(c *Card, selected bool, width int) []string {
	s := styles.T().S()

	title := render.TruncateAndPad(c.Clip.Transcription, width)
	if selected {
		title = s.Cursor.Render(title)
	} else {
		title = s.Base.Render(title)
	}

	buttons := make([]string, len(c.Buttons))
	for i, b := range c.Buttons {
		buttons[i] = m.buttonStyle(b, selected && i == m.selectedCol()).Render(b.Label())
	}
	row := strings.Join(buttons, " ")
	if pad := width - lipgloss.Width(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}

	return []string{title, row, render.EmptyLine(width)}
}

func (m *Model) buttonStyle(b *Button, selected bool) lipgloss.Style {
	s := styles.T().S()
	switch {
	case b.Disabled():
		return s.ButtonDisabled
	case selected && m.mode == mode.Build:
		return s.ButtonBuild
	case selected:
		return s.ButtonSelected
	default:
		return s.Button
	}
}
