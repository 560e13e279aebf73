package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded panel border for the given focus state.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
