// Package playback owns the single "now playing" session and the transport
// controls bound to it.
package playback

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/errmsg"
	"github.com/llehouerou/announcer/internal/player"
)

// Session is the live playback of one clip.
type Session struct {
	handle player.Handle
	name   string
	offs   []func()
}

// Handle returns the audio handle of the session.
func (s *Session) Handle() player.Handle { return s.handle }

// Name returns the display name of the session.
func (s *Session) Name() string { return s.name }

// Controller plays clips one at a time. Starting a clip replaces the current
// session: its listeners and transport bindings are released before the new
// ones are attached.
type Controller struct {
	backend player.Backend
	root    string
	log     zerolog.Logger

	session *Session
	panel   Panel

	playPause *Control
	stop      *Control
}

// New creates a controller that resolves files under root.
func New(backend player.Backend, root string) *Controller {
	return &Controller{
		backend:   backend,
		root:      root,
		log:       zerolog.Nop(),
		panel:     idlePanel(),
		playPause: NewControl("play-pause"),
		stop:      NewControl("stop"),
	}
}

// SetLogger sets the logger used for playback tracing.
func (c *Controller) SetLogger(log zerolog.Logger) {
	c.log = log
}

// PlayAudio starts playing file under the sound root, labelled displayName,
// replacing any current session. The returned handle lets callers listen to
// this clip's own lifecycle events.
func (c *Controller) PlayAudio(file, displayName string) player.Handle {
	c.log.Debug().Str("file", file).Msg("trying to play clip")

	c.release()

	h := c.backend.Open(catalogue.Resolve(c.root, file), player.Options{
		Autoplay: true,
		Loop:     false,
		Preload:  true,
	})
	s := &Session{handle: h, name: displayName}
	s.offs = []func(){
		h.On(player.EventLoadError, func(e player.Event) { c.fail(errmsg.OpSoundLoad, file, e.Err) }),
		h.On(player.EventPlayError, func(e player.Event) { c.fail(errmsg.OpSoundPlay, file, e.Err) }),
		h.On(player.EventPlay, func(player.Event) {
			c.panel = Panel{Visible: true, Label: displayName, Playing: true}
		}),
		h.On(player.EventEnd, func(player.Event) { c.panel.Playing = false }),
		h.On(player.EventPause, func(player.Event) { c.panel.Playing = false }),
		h.On(player.EventStop, func(player.Event) {
			c.panel = idlePanel()
			c.release()
		}),
	}
	c.session = s

	c.playPause.Bind(func() {
		if h.Playing() {
			h.Pause()
		} else {
			h.Play()
		}
	})
	c.stop.Bind(h.Stop)

	return h
}

func (c *Controller) fail(op errmsg.Op, file string, err error) {
	c.log.Warn().Err(err).Str("file", file).Str("op", string(op)).Msg("playback failed")
	c.panel = Panel{Visible: true, Label: errmsg.Format(op, err), Err: true}
}

// release detaches the current session: listeners first, then transport
// bindings, then the handle itself. Stopping the old handle here emits no
// UI change since its listeners are already gone.
func (c *Controller) release() {
	s := c.session
	if s == nil {
		return
	}
	c.session = nil
	for _, off := range s.offs {
		off()
	}
	c.playPause.Bind(nil)
	c.stop.Bind(nil)
	s.handle.Unload()
}

// PlayPause clicks the play/pause control.
func (c *Controller) PlayPause() bool {
	return c.playPause.Click()
}

// Stop clicks the stop control.
func (c *Controller) Stop() bool {
	return c.stop.Click()
}

// Clear drops the current session and resets the panel without emitting
// anything to other listeners of the handle.
func (c *Controller) Clear() {
	c.release()
	c.panel = idlePanel()
}

// Panel returns the now-playing panel state.
func (c *Controller) Panel() Panel {
	return c.panel
}

// Session returns the live session, or nil.
func (c *Controller) Session() *Session {
	return c.session
}

// State returns the state of the live session's handle.
func (c *Controller) State() player.State {
	if c.session == nil {
		return player.Stopped
	}
	return c.session.handle.State()
}

// Controls returns the play/pause and stop controls.
func (c *Controller) Controls() (playPause, stop *Control) {
	return c.playPause, c.stop
}
