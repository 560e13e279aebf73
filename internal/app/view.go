// internal/app/view.go
package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/announcer/internal/mode"
	"github.com/llehouerou/announcer/internal/ui/playerbar"
	"github.com/llehouerou/announcer/internal/ui/render"
	"github.com/llehouerou/announcer/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	// Panel sizes depend on state changed by callbacks since the last
	// resize, such as the player bar appearing.
	m.resize()

	view := m.renderHeader()
	if bar := m.SearchBar.View(); bar != "" {
		view += "\n" + bar
	}

	body := m.Cards.View()
	if m.Mode.StagingVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.Builder.View())
	}
	view += "\n" + body

	if bar := playerbar.Render(m.Playback.Panel(), m.Width); bar != "" {
		view += "\n" + bar
	}
	if m.status.text != "" {
		view += "\n" + styles.T().S().Muted.Render(render.Truncate(m.status.text, m.Width))
	}

	return m.Alert.Overlay(m.Help.Overlay(view), m.Width, m.Height)
}

// renderHeader shows the title, the mode and the clip count.
func (m Model) renderHeader() string {
	s := styles.T().S()

	title := s.Title.Render("Announcements")
	badge := s.ButtonSelected.Render(modeName(m.Mode.Mode()))
	if m.Mode.Mode() == mode.Build {
		badge = s.ButtonBuild.Render(modeName(m.Mode.Mode()))
	}

	count := "loading..."
	if m.loaded {
		total := m.Cards.Len()
		shown := len(m.Cards.Visible())
		count = humanize.Comma(int64(total)) + " clips"
		if shown != total {
			count = humanize.Comma(int64(shown)) + " of " + count
		}
	}

	return render.Row(title+" "+badge, s.Muted.Render(count), m.Width)
}

func modeName(md mode.Mode) string {
	if md == mode.Build {
		return "Builder"
	}
	return "Browse"
}
