// internal/player/mock.go
package player

import "errors"

// Mock is a Backend test double. Handles honor Options like the real
// backend: preload and autoplay run on the next scheduler turn.
type Mock struct {
	sched    Scheduler
	nextID   uint64
	handles  []*MockHandle
	loadErrs map[string]error
}

// NewMock creates a mock backend posting to sched.
func NewMock(sched Scheduler) *Mock {
	return &Mock{
		sched:    sched,
		loadErrs: make(map[string]error),
	}
}

// Open implements Backend.
func (m *Mock) Open(src string, opts Options) Handle {
	m.nextID++
	h := &MockHandle{
		id:      m.nextID,
		src:     src,
		opts:    opts,
		loadErr: m.loadErrs[src],
	}
	m.handles = append(m.handles, h)
	if opts.Preload || opts.Autoplay {
		m.sched.Post(func() {
			if h.unloaded || !h.ensureLoaded() {
				return
			}
			if opts.Autoplay {
				h.Play()
			}
		})
	}
	return h
}

// Test helpers

// FailLoad makes every handle opened for src fail to load with err.
func (m *Mock) FailLoad(src string, err error) { m.loadErrs[src] = err }

// Handles returns every handle opened so far, oldest first.
func (m *Mock) Handles() []*MockHandle { return m.handles }

// Last returns the most recently opened handle, or nil.
func (m *Mock) Last() *MockHandle {
	if len(m.handles) == 0 {
		return nil
	}
	return m.handles[len(m.handles)-1]
}

// Opened returns the sources of every handle opened so far.
func (m *Mock) Opened() []string {
	srcs := make([]string, len(m.handles))
	for i, h := range m.handles {
		srcs[i] = h.src
	}
	return srcs
}

// ErrMockPlay is the default error used by MockHandle.FailPlay.
var ErrMockPlay = errors.New("mock play failure")

// MockHandle is the Handle returned by Mock.
type MockHandle struct {
	emitter

	id       uint64
	src      string
	opts     Options
	state    State
	loaded   bool
	unloaded bool
	loadErr  error
	plays    int
}

func (h *MockHandle) ID() uint64 { return h.id }

func (h *MockHandle) Src() string { return h.src }

func (h *MockHandle) State() State { return h.state }

func (h *MockHandle) Playing() bool { return h.state == Playing }

func (h *MockHandle) ensureLoaded() bool {
	if h.loaded {
		return true
	}
	if h.loadErr != nil {
		h.emit(Event{Kind: EventLoadError, Err: h.loadErr})
		return false
	}
	h.loaded = true
	return true
}

func (h *MockHandle) Play() {
	if h.unloaded || !h.ensureLoaded() || h.state == Playing {
		return
	}
	h.plays++
	h.state = Playing
	h.emit(Event{Kind: EventPlay})
}

func (h *MockHandle) Pause() {
	if h.state != Playing {
		return
	}
	h.state = Paused
	h.emit(Event{Kind: EventPause})
}

func (h *MockHandle) Stop() {
	if h.state == Stopped {
		return
	}
	h.state = Stopped
	h.emit(Event{Kind: EventStop})
}

func (h *MockHandle) Unload() {
	if h.unloaded {
		return
	}
	h.Stop()
	h.clear()
	h.unloaded = true
}

// Finish simulates natural completion of a playing handle.
func (h *MockHandle) Finish() {
	if h.state != Playing {
		return
	}
	h.state = Stopped
	h.emit(Event{Kind: EventEnd})
	if h.opts.Loop && !h.unloaded {
		h.Play()
	}
}

// FailPlay simulates the output device rejecting playback.
func (h *MockHandle) FailPlay(err error) {
	if err == nil {
		err = ErrMockPlay
	}
	h.state = Stopped
	h.emit(Event{Kind: EventPlayError, Err: err})
}

// Unloaded reports whether Unload was called.
func (h *MockHandle) Unloaded() bool { return h.unloaded }

// Plays returns how many times playback started or resumed.
func (h *MockHandle) Plays() int { return h.plays }

// Options returns the options the handle was opened with.
func (h *MockHandle) Options() Options { return h.opts }

// Listeners returns the number of registered listeners.
func (h *MockHandle) Listeners() int { return len(h.listeners) }

// Verify implementations satisfy Handle and Backend at compile time.
var (
	_ Handle  = (*MockHandle)(nil)
	_ Handle  = (*speakerHandle)(nil)
	_ Backend = (*Mock)(nil)
	_ Backend = (*Speaker)(nil)
)
