// Package cards renders the clip catalogue as a scrollable list of cards,
// one per clip, each with its variant buttons.
package cards

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/keymap"
	"github.com/llehouerou/announcer/internal/mode"
	"github.com/llehouerou/announcer/internal/ui"
	"github.com/llehouerou/announcer/internal/ui/cursor"
)

// Model is the card list. It is the target of the catalogue filter, so it
// is used through a pointer.
type Model struct {
	ui.Base
	cards  []*Card
	byID   map[int]*Card
	cursor cursor.Cursor
	col    int
	mode   mode.Mode
}

// New builds a card per clip, labelled for mode m.
func New(clips []catalogue.Clip, m mode.Mode) *Model {
	model := &Model{
		byID:   make(map[int]*Card, len(clips)),
		cursor: cursor.New(ui.ScrollMargin),
	}
	for _, c := range clips {
		card := newCard(c)
		model.cards = append(model.cards, card)
		model.byID[c.ID] = card
	}
	model.Relabel(m)
	return model
}

// IDs returns the ID of every card, visible or not, in catalogue order.
func (m *Model) IDs() []int {
	ids := make([]int, len(m.cards))
	for i, c := range m.cards {
		ids[i] = c.Clip.ID
	}
	return ids
}

// SetVisible shows or hides the card of a clip. Unknown IDs are ignored.
// The cursor is left alone until Reconcile.
func (m *Model) SetVisible(id int, visible bool) {
	if card, ok := m.byID[id]; ok {
		card.visible = visible
	}
}

// Reconcile clamps the cursor to the visible cards after a batch of
// SetVisible calls.
func (m *Model) Reconcile() {
	n := 0
	for _, c := range m.cards {
		if c.visible {
			n++
		}
	}
	m.cursor.ClampToBounds(n, m.pageSize())
}

// Visible returns the cards that pass the filter, in catalogue order.
func (m *Model) Visible() []*Card {
	var out []*Card
	for _, c := range m.cards {
		if c.visible {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the total number of cards.
func (m *Model) Len() int {
	return len(m.cards)
}

// Buttons returns every variant button on every card.
func (m *Model) Buttons() []*Button {
	var out []*Button
	for _, c := range m.cards {
		out = append(out, c.Buttons...)
	}
	return out
}

// Relabel updates every button, hidden cards included, for mode md.
func (m *Model) Relabel(md mode.Mode) {
	m.mode = md
	mode.Relabel(m.Buttons(), md)
}

// Mode returns the mode the labels were last set for.
func (m *Model) Mode() mode.Mode {
	return m.mode
}

// Selected returns the card and button under the cursor, or nil.
func (m *Model) Selected() (*Card, *Button) {
	visible := m.Visible()
	pos := m.cursor.Pos()
	if pos >= len(visible) {
		return nil, nil
	}
	card := visible[pos]
	col := min(m.col, len(card.Buttons)-1)
	if col < 0 {
		return card, nil
	}
	return card, card.Buttons[col]
}

// Handle applies a resolved key action and returns the command it produces.
func (m *Model) Handle(a keymap.Action) tea.Cmd {
	n := len(m.Visible())
	switch a { //nolint:exhaustive // only card actions
	case keymap.ActionMoveDown:
		m.cursor.Move(1, n, m.pageSize())
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, n, m.pageSize())
	case keymap.ActionJumpStart:
		m.cursor.JumpStart()
	case keymap.ActionJumpEnd:
		m.cursor.JumpEnd(n, m.pageSize())
	case keymap.ActionMoveLeft:
		m.col = max(m.selectedCol()-1, 0)
	case keymap.ActionMoveRight:
		if card, _ := m.Selected(); card != nil {
			m.col = min(m.selectedCol()+1, len(card.Buttons)-1)
		}
	case keymap.ActionActivate:
		return m.activate()
	}
	return nil
}

func (m *Model) selectedCol() int {
	card, _ := m.Selected()
	if card == nil {
		return 0
	}
	return min(m.col, len(card.Buttons)-1)
}

// activate emits a click for the selected button. Disabled buttons emit
// nothing.
func (m *Model) activate() tea.Cmd {
	card, btn := m.Selected()
	if card == nil || btn == nil || btn.Disabled() {
		return nil
	}
	a := Activate{Transcription: card.Clip.Transcription, File: btn.File()}
	return func() tea.Msg { return ActionMsg(a) }
}

// pageSize is the number of cards that fit in the panel.
func (m *Model) pageSize() int {
	return m.ListHeight(ui.BorderHeight) / ui.CardHeight
}
