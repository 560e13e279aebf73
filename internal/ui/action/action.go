// Package action defines the messages UI components send to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a component asks the app to do.
// ActionType returns an identifier for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that sent it.
type Msg struct {
	Source string // "cards", "builder", "searchbar", "alert"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd returns a command that delivers a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
