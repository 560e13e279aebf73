// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/ui/action"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case runMsg:
		m.sched.Drain()
		m.Builder.Sync()
		cmd = m.sched.Wait()

	case catalogueLoadedMsg:
		m.handleCatalogueLoaded(msg)

	case stderrMsg:
		m.setStatus(string(msg))
		cmd = waitForStderr()

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()

	case action.Msg:
		cmd = m.handleAction(msg)

	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)
	}

	m.publish()
	return m, cmd
}
