package alert

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/ui/action"
)

func blank(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return strings.Join(lines, "\n")
}

func TestShowAndDismiss(t *testing.T) {
	m := New()
	if m.Active() {
		t.Fatal("new alert should be inactive")
	}

	m.Show("Error", "Failed to load clips: no such file")
	if !m.Active() {
		t.Fatal("alert should be active after Show")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on enter")
	}
	msg, ok := cmd().(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", cmd())
	}
	if msg.Source != Source {
		t.Errorf("Source = %q, want %q", msg.Source, Source)
	}
	if _, ok := msg.Action.(Dismissed); !ok {
		t.Errorf("Action = %T, want Dismissed", msg.Action)
	}
	if m.Active() {
		t.Error("alert should be inactive after enter")
	}
}

func TestOtherKeysAreSwallowed(t *testing.T) {
	m := New()
	m.Show("Error", "boom")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		t.Error("expected no command for q")
	}
	if !m.Active() {
		t.Error("q should not dismiss the alert")
	}
}

func TestQueuedAlerts(t *testing.T) {
	m := New()
	m.Show("First", "one")
	m.Show("Second", "two")

	if title, _ := m.Message(); title != "First" {
		t.Errorf("shown = %q, want First", title)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if title, text := m.Message(); title != "Second" || text != "two" {
		t.Errorf("shown = %q/%q, want Second/two", title, text)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Active() {
		t.Error("all alerts dismissed, should be inactive")
	}
}

func TestOverlay(t *testing.T) {
	base := blank(80, 24)

	m := New()
	if got := m.Overlay(base, 80, 24); got != base {
		t.Error("inactive alert should not change the view")
	}

	m.Show("Error", "Failed to load clips: boom")
	got := m.Overlay(base, 80, 24)
	if !strings.Contains(got, "Failed to load clips: boom") {
		t.Error("overlay should contain the message")
	}
	if !strings.Contains(got, Hint) {
		t.Error("overlay should contain the hint")
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 24 {
		t.Errorf("overlay has %d lines, want 24", len(lines))
	}
	if lines[0] != strings.Repeat(".", 80) {
		t.Error("first line should be untouched base")
	}
}
