// Package playlist stages clips in builder mode and plays them back to back.
package playlist

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/player"
)

// ErrNoFile is returned when staging an entry without an audio file.
var ErrNoFile = errors.New("entry has no audio file")

// Player starts a clip and returns the handle that plays it.
type Player interface {
	PlayAudio(file, displayName string) player.Handle
}

// Engine owns the staging playlist and the sequential run started from it.
type Engine struct {
	player  Player
	staging *Playlist
	log     zerolog.Logger

	run      *Run
	active   player.Handle
	onFinish func(played int)

	// detached is set when the staging list is edited during a run, so run
	// positions no longer index it.
	detached bool
}

// NewEngine creates an engine that plays through p.
func NewEngine(p Player) *Engine {
	return &Engine{
		player:  p,
		staging: NewPlaylist(),
		log:     zerolog.Nop(),
	}
}

// SetLogger sets the logger used for chain tracing.
func (e *Engine) SetLogger(log zerolog.Logger) {
	e.log = log
}

// OnFinish sets fn to be called when a run plays its last entry to the end.
// Stopped or stalled runs never finish.
func (e *Engine) OnFinish(fn func(played int)) {
	e.onFinish = fn
}

// Enqueue appends entry to the staging playlist.
func (e *Engine) Enqueue(entry Entry) error {
	if entry.File == "" {
		return ErrNoFile
	}
	e.staging.Add(entry)
	return nil
}

// Remove drops the staged entry at pos.
func (e *Engine) Remove(pos int) bool {
	return e.edited(e.staging.Remove(pos))
}

// Move reorders a staged entry.
func (e *Engine) Move(from, to int) bool {
	return e.edited(e.staging.Move(from, to))
}

func (e *Engine) edited(ok bool) bool {
	if ok && e.current() != nil {
		e.detached = true
	}
	return ok
}

// Entries returns a copy of the staged entries.
func (e *Engine) Entries() []Entry {
	return e.staging.Entries()
}

// Len returns the number of staged entries.
func (e *Engine) Len() int {
	return e.staging.Len()
}

// PlayAll plays the staged entries in order, each starting when the
// previous one ends naturally. An empty playlist does nothing.
func (e *Engine) PlayAll() {
	if e.staging.Len() == 0 {
		return
	}
	e.run = newRun(e.staging.Entries())
	e.detached = false
	e.log.Debug().Int("entries", e.run.Len()).Msg("play all")
	e.advance()
}

func (e *Engine) advance() {
	entry := e.run.Next()
	if entry == nil {
		e.log.Debug().Msg("playlist finished")
		e.active = nil
		if e.onFinish != nil {
			e.onFinish(e.run.Len())
		}
		return
	}

	// The previous handle is superseded by this call; clearing active first
	// keeps its late events from being mistaken for the new one.
	e.active = nil
	h := e.player.PlayAudio(entry.File, catalogue.ToName(entry.Transcription, entry.File))
	e.active = h

	h.On(player.EventEnd, func(player.Event) {
		if e.active != h {
			return
		}
		e.advance()
	})
}

// current returns the run's handle while it is still loaded. Stopping a
// clip or playing another one directly unloads it.
func (e *Engine) current() player.Handle {
	if e.active == nil || e.active.Unloaded() {
		return nil
	}
	return e.active
}

// Position returns the staging index of the entry being played by the
// current run, or -1 when no run is active or the staging list was edited
// since the run started.
func (e *Engine) Position() int {
	if e.run == nil || e.current() == nil || e.detached {
		return -1
	}
	return e.run.CurrentIndex()
}

// Playing reports whether the chain's current handle is playing or paused.
func (e *Engine) Playing() bool {
	h := e.current()
	return h != nil && h.State().IsActive()
}
