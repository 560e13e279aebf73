// Package builderpanel renders the staging playlist shown in builder mode.
package builderpanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/keymap"
	"github.com/llehouerou/announcer/internal/playlist"
	"github.com/llehouerou/announcer/internal/ui"
	"github.com/llehouerou/announcer/internal/ui/action"
	"github.com/llehouerou/announcer/internal/ui/cursor"
)

// Staging is the playlist the panel displays.
type Staging interface {
	Entries() []playlist.Entry
	Len() int
	Position() int
	Playing() bool
}

// Model is the builder panel. It never edits the playlist itself; edits
// are requested through actions so the app applies them on the engine.
type Model struct {
	ui.Base
	staging Staging
	cursor  cursor.Cursor
}

// New creates a builder panel over staging.
func New(staging Staging) Model {
	return Model{
		staging: staging,
		cursor:  cursor.New(ui.ScrollMargin),
	}
}

// Cursor returns the selected entry index.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// Sync clamps the cursor after the playlist changed.
func (m *Model) Sync() {
	m.cursor.ClampToBounds(m.staging.Len(), m.listHeight())
}

// Handle applies a resolved key action and returns the command it produces.
func (m *Model) Handle(a keymap.Action) tea.Cmd {
	n := m.staging.Len()
	switch a { //nolint:exhaustive // only builder actions
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, m.listHeight())
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, m.listHeight())
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(n, m.listHeight())
	case keymap.ActionRemoveEntry:
		if n == 0 {
			return nil
		}
		return emit(RemoveEntry{Index: m.cursor.Pos()})
	case keymap.ActionMoveEntryDn:
		return m.moveEntry(1)
	case keymap.ActionMoveEntryUp:
		return m.moveEntry(-1)
	case keymap.ActionPlayAll:
		if n == 0 {
			return nil
		}
		return emit(PlayAll{})
	}
	return nil
}

// moveEntry requests a move and lets the cursor follow the entry.
func (m *Model) moveEntry(delta int) tea.Cmd {
	from := m.cursor.Pos()
	to := from + delta
	if to < 0 || to >= m.staging.Len() {
		return nil
	}
	m.cursor.Move(delta, m.staging.Len(), m.listHeight())
	return emit(MoveEntry{From: from, To: to})
}

func emit(a action.Action) tea.Cmd {
	return action.Cmd(Source, a)
}

func (m Model) listHeight() int {
	return m.ListHeight(ui.PanelOverhead)
}
