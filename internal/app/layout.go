// internal/app/layout.go
package app

import (
	"github.com/llehouerou/announcer/internal/ui"
	"github.com/llehouerou/announcer/internal/ui/playerbar"
)

// headerHeight is the title row.
const headerHeight = 1

// bodyHeight returns the rows left for the cards and builder panels.
func (m *Model) bodyHeight() int {
	h := m.Height - headerHeight - m.SearchBar.Rows()
	if m.Playback.Panel().Visible {
		h -= playerbar.Height
	}
	if m.status.text != "" {
		h--
	}
	return max(h, 0)
}

// builderWidth returns the builder panel width, 0 when it is hidden.
func (m *Model) builderWidth() int {
	if !m.Mode.StagingVisible() {
		return 0
	}
	return m.Width / ui.BuilderWidthDivisor
}

// resize recomputes every component size from the terminal size.
func (m *Model) resize() {
	body := m.bodyHeight()
	bw := m.builderWidth()
	m.Cards.SetSize(m.Width-bw, body)
	m.Builder.SetSize(bw, body)
	m.SearchBar.SetSize(m.Width, 1)
	m.Help.SetSize(m.Width, m.Height)
}
