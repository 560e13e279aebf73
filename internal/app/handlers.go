// internal/app/handlers.go
package app

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/errmsg"
	"github.com/llehouerou/announcer/internal/mode"
	"github.com/llehouerou/announcer/internal/mpris"
	"github.com/llehouerou/announcer/internal/search"
	"github.com/llehouerou/announcer/internal/ui/action"
	"github.com/llehouerou/announcer/internal/ui/alert"
	"github.com/llehouerou/announcer/internal/ui/builderpanel"
	"github.com/llehouerou/announcer/internal/ui/cards"
	"github.com/llehouerou/announcer/internal/ui/helpbindings"
	"github.com/llehouerou/announcer/internal/ui/searchbar"
)

// handleCatalogueLoaded builds the cards and the search index. A failed
// load leaves an empty catalogue behind a blocking alert.
func (m *Model) handleCatalogueLoaded(msg catalogueLoadedMsg) {
	m.loaded = true
	clips := msg.clips
	if msg.err != nil {
		m.log.Error().Err(msg.err).Str("source", m.cfg.Catalogue).Msg("catalogue load failed")
		m.Alert.Show("Error", errmsg.Format(errmsg.OpCatalogueLoad, msg.err))
		clips = nil
	}
	m.log.Info().Int("clips", len(clips)).Msg("catalogue loaded")

	m.Cards = cards.New(clips, m.Mode.Mode())

	docs := catalogue.Documents(clips)
	index, err := search.Build(m.cfg.Search.Backend, docs)
	if err != nil {
		m.log.Warn().Err(err).Str("backend", m.cfg.Search.Backend).Msg("falling back to trigram search")
		m.Alert.Show("Error", errmsg.Format(errmsg.OpSearchIndex, err))
		index, _ = search.NewTrigramIndex(docs)
	}
	m.Index = index

	m.Filter = search.NewFilter(index, m.Cards, m.sched, m.debounce())
	m.Filter.SetLogger(m.logs.Component("search"))
	status := m.status
	m.Filter.OnError = func(err error) {
		status.text = errmsg.Format(errmsg.OpSearch, err)
	}

	m.setFocus(m.Focus)
	m.resize()
}

// handleAction routes actions sent by UI components.
func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case cards.Activate:
		m.handleActivate(a)
	case builderpanel.RemoveEntry:
		m.Engine.Remove(a.Index)
		m.Builder.Sync()
	case builderpanel.MoveEntry:
		m.Engine.Move(a.From, a.To)
	case builderpanel.PlayAll:
		m.Engine.PlayAll()
	case searchbar.QueryChanged:
		if m.Filter != nil {
			m.Filter.Input(a.Text)
		}
	case alert.Dismissed:
		m.log.Debug().Msg("alert dismissed")
	case helpbindings.Close:
		m.log.Debug().Msg("help closed")
	}
	return nil
}

// handleActivate plays or stages the clicked variant depending on mode.
func (m *Model) handleActivate(a cards.Activate) {
	outcome, err := m.Dispatch.Click(a.Transcription, a.File)
	if err != nil {
		m.setStatus(errmsg.FormatWith(errmsg.OpStage, catalogue.ToName(a.Transcription, a.File), err))
		return
	}
	if outcome == mode.Staged {
		m.Builder.Sync()
		m.setStatus("Added " + catalogue.ToName(a.Transcription, a.File))
	}
}

// toggleMode switches mode, relabels every card and moves focus off a
// panel that is about to disappear.
func (m *Model) toggleMode() {
	md := m.Mode.Toggle()
	m.Cards.Relabel(md)
	if !m.Mode.StagingVisible() && m.Focus == FocusBuilder {
		m.setFocus(FocusCards)
	}
	m.resize()
}

// clearSearch drops the query and shows every card at once.
func (m *Model) clearSearch() {
	m.SearchBar.Clear()
	if m.Filter != nil {
		m.Filter.Cancel()
		m.Filter.Apply("")
	}
	m.resize()
}

func (m *Model) setFocus(f FocusTarget) {
	m.Focus = f
	m.Cards.SetFocused(f == FocusCards)
	m.Builder.SetFocused(f == FocusBuilder)
}

func (m *Model) setStatus(text string) {
	m.status.text = text
}

// publish sends the now-playing status to the MPRIS bridge.
func (m *Model) publish() {
	if m.publisher == nil {
		return
	}
	s := mpris.Status{State: m.Playback.State()}
	if session := m.Playback.Session(); session != nil {
		s.Title = session.Name()
		s.File = session.Handle().Src()
	}
	m.publisher.Update(s)
}

// shutdown releases the audio handle and any pending search.
func (m *Model) shutdown() {
	if m.Filter != nil {
		m.Filter.Cancel()
	}
	if c, ok := m.Index.(io.Closer); ok {
		if err := c.Close(); err != nil {
			m.log.Warn().Err(err).Msg("close search index")
		}
	}
	m.Playback.Clear()
	m.log.Info().Msg("shutting down")
}
