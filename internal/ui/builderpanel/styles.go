package builderpanel

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/announcer/internal/ui/styles"
)

const (
	playingSymbol = "▶"
	stalledSymbol = "·" // current entry failed or was stopped
)

func headerStyle() lipgloss.Style {
	return styles.T().S().Title
}

func entryStyle() lipgloss.Style {
	return styles.T().S().Base
}

func playingStyle() lipgloss.Style {
	return styles.T().S().Playing
}

func playedStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func cursorStyle() lipgloss.Style {
	return styles.T().S().Cursor
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Muted
}
