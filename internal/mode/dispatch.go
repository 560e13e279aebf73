package mode

import (
	"github.com/llehouerou/announcer/internal/catalogue"
	"github.com/llehouerou/announcer/internal/player"
	"github.com/llehouerou/announcer/internal/playlist"
)

// Player plays a clip immediately.
type Player interface {
	PlayAudio(file, displayName string) player.Handle
}

// Stager appends entries to the builder playlist.
type Stager interface {
	Enqueue(entry playlist.Entry) error
}

// Outcome describes what a click did.
type Outcome int

const (
	Ignored Outcome = iota
	Played
	Staged
)

// Dispatcher routes variant clicks according to the current mode.
type Dispatcher struct {
	mode   *Controller
	player Player
	stager Stager
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(mode *Controller, p Player, s Stager) *Dispatcher {
	return &Dispatcher{mode: mode, player: p, stager: s}
}

// Click handles a click on a variant control of the clip with the given
// transcription. Disabled controls carry no file and are ignored.
func (d *Dispatcher) Click(transcription, file string) (Outcome, error) {
	if file == "" {
		return Ignored, nil
	}
	if d.mode.Mode() == Build {
		err := d.stager.Enqueue(playlist.Entry{Transcription: transcription, File: file})
		if err != nil {
			return Ignored, err
		}
		return Staged, nil
	}
	d.player.PlayAudio(file, catalogue.ToName(transcription, file))
	return Played, nil
}
