//go:build linux

// Package mpris exposes the now-playing controls over D-Bus so desktop
// media keys can pause and stop clips.
package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/announcer/internal/player"
)

// Adapter connects the transport controls to MPRIS over D-Bus.
type Adapter struct {
	bridge *bridge
	server *server.Server
}

// New creates and starts a new MPRIS adapter. state reports the live
// session state and is only called on the event loop.
func New(sched Scheduler, transport Transport, state func() player.State) (*Adapter, error) {
	a := &Adapter{bridge: newBridge(sched, transport)}

	playerAdapter := &playerAdapter{bridge: a.bridge, state: state}
	a.server = server.NewServer("announcer", &rootAdapter{}, playerAdapter)

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Update publishes the now-playing status.
func (a *Adapter) Update(s Status) {
	a.bridge.update(s)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Announcer", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
// Only play/pause and stop are supported: clips have no next or previous.
type playerAdapter struct {
	bridge *bridge
	state  func() player.State
}

func (p *playerAdapter) Next() error     { return nil }
func (p *playerAdapter) Previous() error { return nil }

func (p *playerAdapter) Pause() error {
	p.bridge.pause(p.state)
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.bridge.playPause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.bridge.stop()
	return nil
}

func (p *playerAdapter) Play() error {
	p.bridge.play(p.state)
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.bridge.snapshot().State), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.bridge.snapshot()
	if s.File == "" {
		return types.Metadata{}, nil
	}
	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(s.File)),
		Title:   s.Title,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.bridge.snapshot().File != "", nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(file string) string {
	h := fnv.New64a()
	h.Write([]byte(file))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
