package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/announcer/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	errorSymbol = "✗"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}

func labelStyle() lipgloss.Style {
	return styles.T().S().Title
}

func errorStyle() lipgloss.Style {
	return styles.T().S().Error
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}
