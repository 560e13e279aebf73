// internal/player/handle.go
package player

import "errors"

// ErrUnsupportedFormat is reported when a file extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Options controls how a handle is opened.
type Options struct {
	Autoplay bool // start playing as soon as the resource is loaded
	Loop     bool // restart on natural end instead of ending
	Preload  bool // load the resource eagerly instead of on first play
}

// Handle is one loaded audio resource. All methods must be called from the
// scheduler that the backend was created with.
type Handle interface {
	ID() uint64
	Src() string
	Play()
	Pause()
	Stop()
	Playing() bool
	State() State
	// On registers a lifecycle listener and returns its removal function.
	On(kind EventKind, fn Listener) (off func())
	// Unload stops playback, releases the resource and drops all listeners.
	Unload()
	// Unloaded reports whether Unload was called.
	Unloaded() bool
}

// Backend creates handles. Loading and autoplay happen on a later scheduler
// turn so listeners attached right after Open observe every event.
type Backend interface {
	Open(src string, opts Options) Handle
}
