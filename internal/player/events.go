package player

// EventKind identifies a lifecycle event of a handle.
type EventKind int

const (
	EventLoadError EventKind = iota // the resource could not be opened or decoded
	EventPlayError                  // the output device refused to play
	EventPlay                       // playback started or resumed
	EventEnd                        // natural completion
	EventPause                      // explicit pause
	EventStop                       // explicit stop
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLoadError:
		return "loaderror"
	case EventPlayError:
		return "playerror"
	case EventPlay:
		return "play"
	case EventEnd:
		return "end"
	case EventPause:
		return "pause"
	case EventStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners registered on a handle.
type Event struct {
	Kind EventKind
	Err  error // set for LoadError and PlayError
}

// Listener receives handle events. Listeners always run on the scheduler.
type Listener func(Event)

type registration struct {
	id   int
	kind EventKind
	fn   Listener
}

// emitter is the listener registry embedded by handle implementations.
type emitter struct {
	nextID    int
	listeners []registration
}

// On registers fn for events of the given kind and returns a function that
// removes it. Listeners fire in registration order.
func (e *emitter) On(kind EventKind, fn Listener) (off func()) {
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, registration{id: id, kind: kind, fn: fn})
	return func() { e.off(id) }
}

func (e *emitter) off(id int) {
	for i, r := range e.listeners {
		if r.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *emitter) emit(ev Event) {
	// Snapshot so listeners may detach themselves or others while firing.
	snapshot := make([]registration, len(e.listeners))
	copy(snapshot, e.listeners)
	for _, r := range snapshot {
		if r.kind == ev.Kind && e.registered(r.id) {
			r.fn(ev)
		}
	}
}

func (e *emitter) registered(id int) bool {
	for _, r := range e.listeners {
		if r.id == id {
			return true
		}
	}
	return false
}

func (e *emitter) clear() {
	e.listeners = nil
}
