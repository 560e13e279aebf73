// Package helpbindings is a scrollable popup listing the key bindings of
// the focused panel.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/announcer/internal/keymap"
	"github.com/llehouerou/announcer/internal/ui"
	"github.com/llehouerou/announcer/internal/ui/action"
	"github.com/llehouerou/announcer/internal/ui/popup"
	"github.com/llehouerou/announcer/internal/ui/styles"
)

// categoryOrder is the display order of binding contexts.
var categoryOrder = []string{"global", "cards", "builder", "search"}

var categoryLabels = map[string]string{
	"global":  "Global",
	"cards":   "Clip Cards",
	"builder": "Playlist Builder",
	"search":  "Search",
}

// Model holds the help popup state.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
	active       bool
}

// New creates a hidden help popup.
func New() Model {
	return Model{}
}

// Show opens the popup listing the given contexts.
func (m *Model) Show(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
	m.active = true
}

// Active reports whether the popup is shown.
func (m Model) Active() bool {
	return m.active
}

// Update scrolls or closes the popup. Every key is taken while it is shown.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		m.active = false
		return m, action.Cmd(Source, Close{})
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// Overlay draws the popup centered over base.
func (m Model) Overlay(base string) string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return base
	}

	lines := m.lines()
	end := min(m.scrollOffset+m.visibleHeight(), len(lines))
	start := min(m.scrollOffset, end)

	d := popup.New()
	d.Title = "Help"
	d.Content = strings.Join(lines[start:end], "\n")
	d.Footer = m.footer()
	d.Width = maxWidth(lines)
	return popup.Compose(base, d.Render(m.Width(), m.Height()), m.Width())
}

func (m Model) lines() []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := t.S().Base
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	separatorStyle := t.S().Subtle

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(keyList(b)))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				separatorStyle.Render(strings.Repeat("─", keyWidth+15)))
			current = b.Context
		}

		keys := keyList(b)
		padded := keys + strings.Repeat(" ", keyWidth-lipgloss.Width(keys))
		lines = append(lines, keyStyle.Render(padded)+"  "+descStyle.Render(b.Description))
	}
	return lines
}

// keyList joins the keys of a binding, showing the space bar by name.
func keyList(b keymap.Binding) string {
	keys := slices.DeleteFunc(slices.Clone(b.Keys), func(k string) bool { return k == " " })
	return strings.Join(keys, ", ")
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

func (m Model) footer() string {
	if len(m.lines()) <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleHeight leaves room for the popup title, footer and border.
func (m Model) visibleHeight() int {
	return max(m.Height()-10, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
