//go:build !linux

package mpris

import "github.com/llehouerou/announcer/internal/player"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Scheduler, _ Transport, _ func() player.State) (*Adapter, error) {
	return &Adapter{}, nil
}

// Update is a no-op on non-Linux platforms.
func (a *Adapter) Update(_ Status) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
