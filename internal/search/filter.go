package search

import (
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// DefaultDebounce is the quiet period after the last keystroke before the
// filter runs.
const DefaultDebounce = 300 * time.Millisecond

// Target is the set of cards the filter shows and hides. Reconcile is
// called once after each batch of SetVisible calls.
type Target interface {
	IDs() []int
	SetVisible(id int, visible bool)
	Reconcile()
}

// Scheduler runs fn on the event loop that owns the target.
type Scheduler interface {
	Post(fn func())
}

// Filter applies search queries to a Target. Input is debounced so only
// the most recent query of a burst is evaluated.
type Filter struct {
	index  Index
	target Target
	sched  Scheduler
	delay  time.Duration
	log    zerolog.Logger

	// OnError is called on the event loop when the index fails a query.
	OnError func(err error)

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
	query string
}

// NewFilter creates a filter. A non-positive delay uses DefaultDebounce.
func NewFilter(index Index, target Target, sched Scheduler, delay time.Duration) *Filter {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Filter{
		index:  index,
		target: target,
		sched:  sched,
		delay:  delay,
		log:    zerolog.Nop(),
	}
}

// SetLogger sets the logger used for query tracing.
func (f *Filter) SetLogger(log zerolog.Logger) {
	f.log = log
}

// Input records a keystroke. Any pending evaluation is canceled and a new
// one is scheduled for text after the debounce delay.
func (f *Filter) Input(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
	}
	f.gen++
	gen := f.gen
	f.timer = time.AfterFunc(f.delay, func() {
		f.sched.Post(func() { f.fire(gen, text) })
	})
}

// fire drops evaluations that a newer keystroke superseded after their
// timer had already gone off.
func (f *Filter) fire(gen uint64, text string) {
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return
	}
	f.timer = nil
	f.mu.Unlock()

	f.Apply(text)
}

// Cancel drops any pending evaluation.
func (f *Filter) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
}

// Pending reports whether an evaluation is scheduled.
func (f *Filter) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.timer != nil
}

// Query returns the last applied query.
func (f *Filter) Query() string {
	return f.query
}

// Apply filters the target immediately and returns the number of visible
// cards. An empty query shows every card. Otherwise every card is hidden
// and exactly the matches are shown again. If the index fails, every card
// is shown.
func (f *Filter) Apply(text string) int {
	f.query = text
	ids := f.target.IDs()

	if text == "" {
		f.showAll(ids)
		return len(ids)
	}

	results, err := f.index.Search(text)
	if err != nil {
		f.log.Warn().Err(err).Str("query", text).Msg("search failed")
		f.showAll(ids)
		if f.OnError != nil {
			f.OnError(err)
		}
		return len(ids)
	}

	matches := lo.SliceToMap(results, func(r Result) (string, struct{}) {
		return r.Ref, struct{}{}
	})

	for _, id := range ids {
		f.target.SetVisible(id, false)
	}
	shown := 0
	for _, id := range ids {
		if _, ok := matches[strconv.Itoa(id)]; ok {
			f.target.SetVisible(id, true)
			shown++
		}
	}
	f.target.Reconcile()

	f.log.Debug().Str("query", text).Int("matches", shown).Msg("filter applied")
	return shown
}

func (f *Filter) showAll(ids []int) {
	for _, id := range ids {
		f.target.SetVisible(id, true)
	}
	f.target.Reconcile()
}
