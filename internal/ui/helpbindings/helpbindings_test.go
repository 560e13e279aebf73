package helpbindings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/ui/action"
)

func newTestHelp(height int, contexts ...string) Model {
	m := New()
	m.SetSize(80, height)
	m.Show(contexts)
	return m
}

func key(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func assertClosed(t *testing.T, m Model, cmd tea.Cmd) {
	t.Helper()
	if m.Active() {
		t.Error("popup should be closed")
	}
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg, ok := cmd().(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", cmd())
	}
	if _, ok := msg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", msg.Action)
	}
}

func TestClose(t *testing.T) {
	for _, k := range []string{"esc", "q", "?"} {
		t.Run(k, func(t *testing.T) {
			m, cmd := newTestHelp(24, "global").Update(key(k))
			assertClosed(t, m, cmd)
		})
	}
}

func TestScroll(t *testing.T) {
	m := newTestHelp(12, "global", "cards", "builder")
	if m.maxScroll() == 0 {
		t.Fatal("expected enough bindings to scroll")
	}

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("j"))
	if m.scrollOffset != 2 {
		t.Errorf("scrollOffset = %d, want 2", m.scrollOffset)
	}

	m, _ = m.Update(key("k"))
	if m.scrollOffset != 1 {
		t.Errorf("scrollOffset = %d, want 1", m.scrollOffset)
	}

	for range 100 {
		m, _ = m.Update(key("j"))
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scrollOffset = %d, want clamp to %d", m.scrollOffset, m.maxScroll())
	}
}

func TestShowListsContexts(t *testing.T) {
	m := newTestHelp(40, "global", "builder")
	out := m.Overlay(strings.Repeat(strings.Repeat(" ", 80)+"\n", 39))

	for _, want := range []string{"Global", "Playlist Builder", "Toggle builder mode", "Play all"} {
		if !strings.Contains(out, want) {
			t.Errorf("help should contain %q", want)
		}
	}
	if strings.Contains(out, "Clip Cards") {
		t.Error("cards context was not requested")
	}
	if !strings.Contains(out, "?/esc close") {
		t.Error("short help should not offer scrolling")
	}
}

func TestKeyList_NamesSpace(t *testing.T) {
	m := newTestHelp(40, "global")
	for _, b := range m.bindings {
		if strings.Contains(keyList(b), ", ,") || strings.HasPrefix(keyList(b), " ") {
			t.Errorf("raw space key rendered for %q", b.Description)
		}
	}
}

func TestInactiveOverlayIsBase(t *testing.T) {
	m := New()
	m.SetSize(80, 24)
	if got := m.Overlay("base"); got != "base" {
		t.Errorf("Overlay = %q, want base", got)
	}
}
