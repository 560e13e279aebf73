// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/app/handler"
	"github.com/llehouerou/announcer/internal/keymap"
)

// handleKeyMsg routes a key to the first layer that wants it: the alert,
// the help popup, the search bar, global actions, then the focused panel.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	_, cmd := handler.Chain(
		func() handler.Result { return m.handleAlertKeys(msg) },
		func() handler.Result { return m.handleHelpKeys(msg) },
		func() handler.Result { return m.handleSearchKeys(msg) },
		func() handler.Result { return m.handleGlobalKeys(key) },
		func() handler.Result { return m.handlePanelKeys(key) },
	)
	return cmd
}

func (m *Model) handleAlertKeys(msg tea.KeyMsg) handler.Result {
	if !m.Alert.Active() {
		return handler.NotHandled
	}
	var cmd tea.Cmd
	m.Alert, cmd = m.Alert.Update(msg)
	return handler.Handled(cmd)
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) handler.Result {
	if !m.Help.Active() {
		return handler.NotHandled
	}
	var cmd tea.Cmd
	m.Help, cmd = m.Help.Update(msg)
	return handler.Handled(cmd)
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) handler.Result {
	if !m.SearchBar.Active() {
		return handler.NotHandled
	}
	switch m.keys.Resolve("search", msg.String()) { //nolint:exhaustive // only search actions
	case keymap.ActionClearSearch:
		m.clearSearch()
		return handler.HandledNoCmd
	case keymap.ActionCloseSearch:
		m.SearchBar.Close()
		m.resize()
		return handler.HandledNoCmd
	}
	var cmd tea.Cmd
	m.SearchBar, cmd = m.SearchBar.Update(msg)
	return handler.Handled(cmd)
}

func (m *Model) handleGlobalKeys(key string) handler.Result {
	switch m.keys.Resolve(m.Focus.context(), key) { //nolint:exhaustive // only global actions
	case keymap.ActionQuit:
		m.shutdown()
		return handler.Handled(tea.Quit)
	case keymap.ActionSwitchFocus:
		if m.Mode.StagingVisible() && m.Focus == FocusCards {
			m.setFocus(FocusBuilder)
		} else {
			m.setFocus(FocusCards)
		}
		return handler.HandledNoCmd
	case keymap.ActionSearch:
		cmd := m.SearchBar.Open()
		m.resize()
		return handler.Handled(cmd)
	case keymap.ActionHelp:
		m.Help.Show([]string{keymap.Global, m.Focus.context(), "search"})
		return handler.HandledNoCmd
	case keymap.ActionToggleMode:
		m.toggleMode()
		return handler.HandledNoCmd
	case keymap.ActionPlayPause:
		m.Playback.PlayPause()
		return handler.HandledNoCmd
	case keymap.ActionStop:
		m.Playback.Stop()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}

func (m *Model) handlePanelKeys(key string) handler.Result {
	a := m.keys.Resolve(m.Focus.context(), key)
	if a == "" {
		return handler.NotHandled
	}
	if m.Focus == FocusBuilder {
		return handler.Handled(m.Builder.Handle(a))
	}
	return handler.Handled(m.Cards.Handle(a))
}
