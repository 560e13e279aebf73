package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/config"
	"github.com/llehouerou/announcer/internal/mode"
	"github.com/llehouerou/announcer/internal/mpris"
	"github.com/llehouerou/announcer/internal/player"
	"github.com/llehouerou/announcer/internal/playback"
	"github.com/llehouerou/announcer/internal/ui/builderpanel"
	"github.com/llehouerou/announcer/internal/ui/cards"
	"github.com/llehouerou/announcer/internal/ui/searchbar"
)

func testClips() []catalogue.Clip {
	return []catalogue.Clip{
		{ID: 0, Transcription: "Mind the gap", None: &catalogue.AudioRef{File: "gap.mp3"}},
		{
			ID:            1,
			Transcription: "The next station is Central",
			Start:         &catalogue.AudioRef{File: "next-start.mp3"},
			Middle:        &catalogue.AudioRef{File: "next-middle.mp3"},
			End:           &catalogue.AudioRef{File: "next-end.mp3"},
		},
		{ID: 2, Transcription: "Doors closing", None: &catalogue.AudioRef{File: "doors.mp3"}},
	}
}

type recordingPublisher struct {
	last mpris.Status
	n    int
}

func (p *recordingPublisher) Update(s mpris.Status) {
	p.last = s
	p.n++
}

type recordingNotifier struct {
	runs []int
	err  error
}

func (n *recordingNotifier) Finished(played int) error {
	n.runs = append(n.runs, played)
	return n.err
}

type harness struct {
	t     *testing.T
	model Model
	sched *Scheduler
	mock  *player.Mock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWith(t, nil)
}

// newHarnessWith lets configure adjust the dependencies before the model
// is built.
func newHarnessWith(t *testing.T, configure func(*Deps)) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.SoundRoot = "sounds"

	sched := NewScheduler()
	mock := player.NewMock(sched)
	deps := Deps{
		Config:  cfg,
		Backend: mock,
		Sched:   sched,
		Load: func(context.Context, string) ([]catalogue.Clip, error) {
			return testClips(), nil
		},
	}
	if configure != nil {
		configure(&deps)
	}
	m := New(deps)

	h := &harness{t: t, model: m, sched: sched, mock: mock}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 30})
	return h
}

// loaded runs the startup load synchronously.
func (h *harness) loaded() *harness {
	h.t.Helper()
	msg := h.model.loadCatalogueCmd()()
	h.send(msg)
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	require.True(h.t, ok)
	h.model = m
	return cmd
}

func (h *harness) key(k string) tea.Cmd {
	h.t.Helper()
	switch k {
	case "enter":
		return h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		return h.send(tea.KeyMsg{Type: tea.KeyTab})
	case " ":
		return h.send(tea.KeyMsg{Type: tea.KeySpace})
	}
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// run delivers cmd's message, if any, back into the model.
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		h.send(msg)
	}
}

// drain runs posted callbacks the way a runMsg would.
func (h *harness) drain() {
	h.t.Helper()
	h.send(runMsg{})
}

func (h *harness) panel() playback.Panel {
	return h.model.Playback.Panel()
}

func TestLoad_BuildsCards(t *testing.T) {
	h := newHarness(t)
	assert.Contains(t, h.model.View(), "loading...")

	h.loaded()

	assert.Equal(t, 3, h.model.Cards.Len())
	assert.NotNil(t, h.model.Filter)
	assert.NotNil(t, h.model.Index)
	view := h.model.View()
	assert.Contains(t, view, "3 clips")
	assert.Contains(t, view, "Mind the gap")
	assert.Contains(t, view, "Browse")
}

func TestLoad_ErrorShowsAlertAndEmptyCatalogue(t *testing.T) {
	h := newHarness(t)
	h.send(catalogueLoadedMsg{err: errors.New("unexpected status: 404 Not Found")})

	require.True(t, h.model.Alert.Active())
	_, text := h.model.Alert.Message()
	assert.Equal(t, "Failed to load clips: unexpected status: 404 Not Found", text)
	assert.Equal(t, 0, h.model.Cards.Len())
	assert.Contains(t, h.model.View(), "Failed to load clips")

	// The alert takes keys until dismissed.
	h.key("b")
	assert.Equal(t, mode.Browse, h.model.Mode.Mode())

	h.run(h.key("enter"))
	assert.False(t, h.model.Alert.Active())

	h.key("b")
	assert.Equal(t, mode.Build, h.model.Mode.Mode())
}

func TestLoad_UnknownBackendFallsBack(t *testing.T) {
	h := newHarness(t)
	h.model.cfg.Search.Backend = "bogus"
	h.loaded()

	require.True(t, h.model.Alert.Active())
	_, text := h.model.Alert.Message()
	assert.Contains(t, text, "Failed to build search index")

	n := h.model.Filter.Apply("gap")
	assert.Equal(t, 1, n)
}

func TestBrowse_ActivatePlays(t *testing.T) {
	h := newHarness(t).loaded()

	h.run(h.key("enter"))
	require.Equal(t, []string{"sounds/gap.mp3"}, h.mock.Opened())
	assert.False(t, h.panel().Visible, "autoplay runs on the next turn")

	h.drain()
	assert.Equal(t, playback.Panel{Visible: true, Label: "Mind the gap (gap.mp3)", Playing: true}, h.panel())
	assert.Contains(t, h.model.View(), "Mind the gap")
	assert.Equal(t, 0, h.model.Engine.Len())
}

func TestTransportKeys(t *testing.T) {
	h := newHarness(t).loaded()
	h.run(h.key("enter"))
	h.drain()
	handle := h.mock.Last()

	h.key(" ")
	assert.Equal(t, player.Paused, handle.State())
	assert.False(t, h.panel().Playing)

	h.key(" ")
	assert.Equal(t, player.Playing, handle.State())
	assert.True(t, h.panel().Playing)

	h.key("s")
	assert.False(t, h.panel().Visible)
	assert.Equal(t, playback.NothingPlaying, h.panel().Label)
	assert.True(t, handle.Unloaded())

	// Controls are unbound with no session.
	h.key(" ")
	assert.Len(t, h.mock.Handles(), 1)
}

func TestBuild_StagesAndPlaysAll(t *testing.T) {
	h := newHarness(t).loaded()

	h.key("b")
	require.Equal(t, mode.Build, h.model.Mode.Mode())
	_, btn := h.model.Cards.Selected()
	require.NotNil(t, btn)
	assert.Equal(t, "Add", btn.Label())
	assert.Contains(t, h.model.View(), "Playlist")

	h.run(h.key("enter")) // Mind the gap
	h.key("j")
	h.key("l")
	h.key("l")
	h.run(h.key("enter")) // next-end
	require.Equal(t, 2, h.model.Engine.Len())
	assert.Empty(t, h.mock.Opened(), "staging plays nothing")
	assert.Contains(t, h.model.View(), "2 clips")

	h.key("tab")
	require.Equal(t, FocusBuilder, h.model.Focus)
	h.run(h.key("p"))
	h.drain()
	assert.Equal(t, []string{"sounds/gap.mp3"}, h.mock.Opened())
	assert.Equal(t, 0, h.model.Engine.Position())

	h.mock.Last().Finish()
	h.drain()
	assert.Equal(t, []string{"sounds/gap.mp3", "sounds/next-end.mp3"}, h.mock.Opened())
	assert.Equal(t, "The next station is Central (next-end.mp3)", h.panel().Label)

	h.mock.Last().Finish()
	h.drain()
	assert.Len(t, h.mock.Opened(), 2)
	assert.Equal(t, -1, h.model.Engine.Position())
	assert.Equal(t, 2, h.model.Engine.Len(), "entries stay staged after the run")
}

func TestBuild_ToggleBackKeepsEntriesAndFocus(t *testing.T) {
	h := newHarness(t).loaded()
	h.key("b")
	h.run(h.key("enter"))
	h.key("tab")
	require.Equal(t, FocusBuilder, h.model.Focus)

	h.key("b")
	assert.Equal(t, mode.Browse, h.model.Mode.Mode())
	assert.Equal(t, FocusCards, h.model.Focus)
	assert.Equal(t, 1, h.model.Engine.Len())
	assert.NotContains(t, h.model.View(), "Playlist")

	_, btn := h.model.Cards.Selected()
	assert.Equal(t, "Recording", btn.Label())
}

func TestBuilderActions(t *testing.T) {
	h := newHarness(t).loaded()
	h.key("b")
	for _, c := range testClips() {
		ctl := c.Controls()[0]
		h.send(cards.ActionMsg(cards.Activate{Transcription: c.Transcription, File: ctl.File}))
	}
	require.Equal(t, 3, h.model.Engine.Len())

	h.send(builderpanel.ActionMsg(builderpanel.MoveEntry{From: 2, To: 0}))
	assert.Equal(t, "Doors closing", h.model.Engine.Entries()[0].Transcription)

	h.send(builderpanel.ActionMsg(builderpanel.RemoveEntry{Index: 1}))
	entries := h.model.Engine.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Doors closing", entries[0].Transcription)
	assert.Equal(t, "The next station is Central", entries[1].Transcription)
}

func TestBuilder_MarkerDroppedWhenEditedDuringRun(t *testing.T) {
	h := newHarness(t).loaded()
	h.key("b")
	for _, c := range testClips() {
		ctl := c.Controls()[0]
		h.send(cards.ActionMsg(cards.Activate{Transcription: c.Transcription, File: ctl.File}))
	}
	h.send(builderpanel.ActionMsg(builderpanel.PlayAll{}))
	h.drain()
	h.mock.Last().Finish()
	h.drain()
	require.Equal(t, 1, h.model.Engine.Position())
	assert.Contains(t, h.model.Builder.View(), "2/3 clips")
	assert.Contains(t, h.model.Builder.View(), "▶")

	h.send(builderpanel.ActionMsg(builderpanel.RemoveEntry{Index: 0}))

	view := h.model.Builder.View()
	assert.NotContains(t, view, "▶", "positions of the run no longer match the list")
	assert.NotContains(t, view, "2/2")
	assert.Contains(t, view, "2 clips")

	h.key("s")
	assert.Equal(t, -1, h.model.Engine.Position())
}

func TestSearch_DebouncedFilter(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t).loaded()

		h.key("/")
		require.True(t, h.model.SearchBar.Active())

		for _, r := range "door" {
			h.send(searchbar.ActionMsg(searchbar.QueryChanged{Text: h.model.SearchBar.Value() + string(r)}))
			h.model.SearchBar, _ = h.model.SearchBar.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
		assert.Len(t, h.model.Cards.Visible(), 3, "nothing filtered before the debounce")

		time.Sleep(299 * time.Millisecond)
		synctest.Wait()
		h.drain()
		assert.Len(t, h.model.Cards.Visible(), 3)

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		h.drain()
		visible := h.model.Cards.Visible()
		require.Len(t, visible, 1)
		assert.Equal(t, "Doors closing", visible[0].Clip.Transcription)
		assert.Contains(t, h.model.View(), "1 of 3 clips")

		h.key("esc")
		assert.False(t, h.model.SearchBar.Active())
		assert.Len(t, h.model.Cards.Visible(), 3)
		assert.False(t, h.model.Filter.Pending())
	})
}

func TestSearch_KeysGoToSearchBar(t *testing.T) {
	h := newHarness(t).loaded()
	h.key("/")

	h.key("b")
	h.key("q")
	assert.Equal(t, mode.Browse, h.model.Mode.Mode())
	assert.Equal(t, "bq", h.model.SearchBar.Value())

	h.key("enter")
	assert.False(t, h.model.SearchBar.Active())
	assert.Equal(t, "bq", h.model.SearchBar.Value(), "closing keeps the query")
}

func TestHelp_ShowsFocusedBindings(t *testing.T) {
	h := newHarness(t).loaded()
	h.key("?")
	require.True(t, h.model.Help.Active())

	view := h.model.View()
	assert.Contains(t, view, "Global")
	assert.Contains(t, view, "Clip Cards")
	assert.NotContains(t, view, "Playlist Builder")

	// q closes the popup instead of quitting.
	cmd := h.key("q")
	assert.False(t, h.model.Help.Active())
	require.NotNil(t, cmd)
	h.run(cmd)
	assert.NotContains(t, h.model.View(), "Clip Cards")
}

func TestNotifiesWhenPlaylistFinishes(t *testing.T) {
	n := &recordingNotifier{}
	h := newHarnessWith(t, func(d *Deps) { d.Notifier = n }).loaded()
	h.key("b")
	h.run(h.key("enter"))
	h.key("j")
	h.run(h.key("enter"))
	require.Equal(t, 2, h.model.Engine.Len())

	h.model.Engine.PlayAll()
	for range 2 {
		h.drain()
		h.mock.Last().Finish()
	}
	h.drain()
	assert.Equal(t, []int{2}, n.runs)

	// A stopped run is not announced.
	h.model.Engine.PlayAll()
	h.drain()
	h.key("s")
	h.drain()
	assert.Equal(t, []int{2}, n.runs)
}

func TestNotifyFailureIsOnlyLogged(t *testing.T) {
	n := &recordingNotifier{err: errors.New("no notification daemon")}
	fn := notifyFinished(n, zerolog.Nop())

	assert.NotPanics(t, func() { fn(1) })
	assert.Equal(t, []int{1}, n.runs)
}

func TestStderrGoesToStatusLine(t *testing.T) {
	h := newHarness(t).loaded()
	h.send(stderrMsg("ALSA lib pcm.c: underrun occurred"))

	assert.Contains(t, h.model.View(), "ALSA lib pcm.c")
}

func TestPublishesStatus(t *testing.T) {
	h := newHarness(t).loaded()
	pub := &recordingPublisher{}
	h.model.SetPublisher(pub)

	h.run(h.key("enter"))
	h.drain()

	assert.Equal(t, player.Playing, pub.last.State)
	assert.Equal(t, "Mind the gap (gap.mp3)", pub.last.Title)
	assert.Equal(t, "sounds/gap.mp3", pub.last.File)

	h.key("s")
	assert.Equal(t, player.Stopped, pub.last.State)
	assert.Empty(t, pub.last.Title)
}

func TestQuit(t *testing.T) {
	h := newHarness(t).loaded()
	h.run(h.key("enter"))
	h.drain()

	cmd := h.key("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, h.mock.Last().Unloaded())
}

func TestScheduler_PostDoesNotBlock(t *testing.T) {
	s := NewScheduler()
	ran := 0
	for range 3 {
		s.Post(func() { ran++ })
	}

	_, ok := s.Wait()().(runMsg)
	assert.True(t, ok)
	assert.Equal(t, 3, s.Drain())
	assert.Equal(t, 3, ran)
}

func TestView_ZeroSize(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{})
	assert.Empty(t, h.model.View())
}

func TestView_FitsHeight(t *testing.T) {
	h := newHarness(t).loaded()
	h.key("b")
	h.run(h.key("enter"))

	lines := strings.Split(h.model.View(), "\n")
	assert.LessOrEqual(t, len(lines), 30)
}
