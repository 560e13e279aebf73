// Package searchbar is the one-line query input that filters the cards.
package searchbar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/announcer/internal/ui"
	"github.com/llehouerou/announcer/internal/ui/action"
	"github.com/llehouerou/announcer/internal/ui/render"
	"github.com/llehouerou/announcer/internal/ui/styles"
)

// Model wraps a text input. While active it takes every key; closing it
// keeps the query so the filter stays applied.
type Model struct {
	ui.Base
	input  textinput.Model
	active bool
}

// New creates an inactive search bar.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search clips..."
	ti.CharLimit = 256
	return Model{input: ti}
}

// Active reports whether the bar is taking input.
func (m Model) Active() bool {
	return m.active
}

// Value returns the current query.
func (m Model) Value() string {
	return m.input.Value()
}

// Open starts taking input.
func (m *Model) Open() tea.Cmd {
	m.active = true
	m.input.Focus()
	return textinput.Blink
}

// Close stops taking input and keeps the query.
func (m *Model) Close() {
	m.active = false
	m.input.Blur()
}

// Clear empties the query and closes the bar.
func (m *Model) Clear() {
	m.input.SetValue("")
	m.Close()
}

// Update forwards msg to the input and reports query edits.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		return m, tea.Batch(cmd, action.Cmd(Source, QueryChanged{Text: after}))
	}
	return m, cmd
}

// Rows returns the rows the bar takes: one while active or filtering.
func (m Model) Rows() int {
	if m.active || m.input.Value() != "" {
		return 1
	}
	return 0
}

// View renders the bar, or "" when it takes no space.
func (m Model) View() string {
	if m.Rows() == 0 {
		return ""
	}
	m.input.Width = max(m.Width()-lipgloss.Width(m.input.Prompt)-1, 1)
	if m.active {
		return m.input.View()
	}
	s := styles.T().S().Muted
	return s.Render(render.Truncate("/ "+m.input.Value(), m.Width()))
}
