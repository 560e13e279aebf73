// internal/app/app.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/config"
	"github.com/llehouerou/announcer/internal/keymap"
	"github.com/llehouerou/announcer/internal/logging"
	"github.com/llehouerou/announcer/internal/mode"
	"github.com/llehouerou/announcer/internal/mpris"
	"github.com/llehouerou/announcer/internal/player"
	"github.com/llehouerou/announcer/internal/playback"
	"github.com/llehouerou/announcer/internal/playlist"
	"github.com/llehouerou/announcer/internal/search"
	"github.com/llehouerou/announcer/internal/ui/alert"
	"github.com/llehouerou/announcer/internal/ui/builderpanel"
	"github.com/llehouerou/announcer/internal/ui/cards"
	"github.com/llehouerou/announcer/internal/ui/helpbindings"
	"github.com/llehouerou/announcer/internal/ui/searchbar"
)

// LoadFunc reads the clip catalogue from a file path or URL.
type LoadFunc func(ctx context.Context, source string) ([]catalogue.Clip, error)

// FinishNotifier is told when a playlist run plays its last clip.
type FinishNotifier interface {
	Finished(played int) error
}

// Publisher receives the now-playing status after every update.
type Publisher interface {
	Update(s mpris.Status)
}

// Deps are the collaborators the model is built from.
type Deps struct {
	Config  *config.Config
	Backend player.Backend
	Sched   *Scheduler
	Log     *logging.Logger
	Load    LoadFunc // nil uses catalogue.NewLoader

	// Notifier announces finished playlist runs. Nil sends nothing.
	Notifier FinishNotifier
}

// Model is the root application model.
type Model struct {
	cfg   *config.Config
	sched *Scheduler
	load  LoadFunc
	logs  *logging.Logger
	log   zerolog.Logger

	Playback *playback.Controller
	Engine   *playlist.Engine
	Mode     *mode.Controller
	Dispatch *mode.Dispatcher
	Index    search.Index
	Filter   *search.Filter

	Cards     *cards.Model
	Builder   builderpanel.Model
	SearchBar searchbar.Model
	Alert     alert.Model
	Help      helpbindings.Model
	Focus     FocusTarget

	publisher Publisher
	keys      *keymap.Resolver
	status    *statusLine
	loaded    bool

	Width  int
	Height int
}

// statusLine is shared with callbacks that outlive a single Update.
type statusLine struct {
	text string
}

// New creates the application model. The catalogue is loaded by Init.
func New(deps Deps) Model {
	logs := deps.Log
	if logs == nil {
		logs, _ = logging.Open("", "")
	}
	load := deps.Load
	if load == nil {
		load = catalogue.NewLoader().Load
	}

	ctl := playback.New(deps.Backend, deps.Config.SoundRoot)
	ctl.SetLogger(logs.Component("playback"))

	engine := playlist.NewEngine(ctl)
	engine.SetLogger(logs.Component("playlist"))
	if deps.Notifier != nil {
		engine.OnFinish(notifyFinished(deps.Notifier, logs.Component("notify")))
	}

	modes := mode.NewController()
	modeLog := logs.Component("mode")
	modes.OnChange(func(md mode.Mode) {
		modeLog.Debug().Stringer("mode", md).Msg("mode changed")
	})

	m := Model{
		cfg:       deps.Config,
		sched:     deps.Sched,
		load:      load,
		logs:      logs,
		log:       logs.Component("app"),
		Playback:  ctl,
		Engine:    engine,
		Mode:      modes,
		Dispatch:  mode.NewDispatcher(modes, ctl, engine),
		Cards:     cards.New(nil, mode.Browse),
		Builder:   builderpanel.New(engine),
		SearchBar: searchbar.New(),
		Alert:     alert.New(),
		Help:      helpbindings.New(),
		Focus:     FocusCards,
		keys:      keymap.NewResolver(keymap.All),
		status:    &statusLine{},
	}
	m.setFocus(FocusCards)
	return m
}

// SetPublisher sets where the now-playing status is published.
func (m *Model) SetPublisher(p Publisher) {
	m.publisher = p
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalogueCmd(), m.sched.Wait(), waitForStderr())
}

// debounce returns the configured search debounce.
func (m Model) debounce() time.Duration {
	return time.Duration(m.cfg.Search.DebounceMS) * time.Millisecond
}
