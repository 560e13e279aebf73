// Package alert is a blocking message popup. While it is shown it takes
// every key; enter or esc dismisses it.
package alert

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/ui/action"
	"github.com/llehouerou/announcer/internal/ui/popup"
	"github.com/llehouerou/announcer/internal/ui/styles"
)

// Source is the action.Msg source name of the alert.
const Source = "alert"

// Hint is the footer of every alert.
const Hint = "enter/esc: dismiss"

// Dismissed is sent when the user closes the alert.
type Dismissed struct{}

// ActionType implements action.Action.
func (a Dismissed) ActionType() string { return "alert.dismissed" }

// Model holds the queue of pending alerts. Only the first is shown.
type Model struct {
	pending []message
}

type message struct {
	title string
	text  string
}

// New creates an alert with nothing to show.
func New() Model {
	return Model{}
}

// Show queues an alert behind any already shown.
func (m *Model) Show(title, text string) {
	m.pending = append(m.pending, message{title: title, text: text})
}

// Active reports whether an alert is shown.
func (m Model) Active() bool {
	return len(m.pending) > 0
}

// Message returns the title and text of the shown alert.
func (m Model) Message() (title, text string) {
	if !m.Active() {
		return "", ""
	}
	return m.pending[0].title, m.pending[0].text
}

// Update dismisses the shown alert on enter or esc and swallows other keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Active() {
		return m, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter", "esc":
		m.pending = m.pending[1:]
		return m, action.Cmd(Source, Dismissed{})
	}
	return m, nil
}

// Overlay draws the shown alert centered over base.
func (m Model) Overlay(base string, width, height int) string {
	if !m.Active() {
		return base
	}
	d := popup.New()
	d.Title, d.Content = m.Message()
	d.Footer = Hint
	d.Width = min(60, width-4)
	d.Style.BorderColor = styles.T().Error
	return popup.Compose(base, d.Render(width, height), width)
}
