package mpris

import (
	"sync"

	"github.com/llehouerou/announcer/internal/player"
)

// Transport is the pair of now-playing controls. Its methods are only
// called on the event loop.
type Transport interface {
	PlayPause() bool
	Stop() bool
}

// Scheduler runs fn on the event loop.
type Scheduler interface {
	Post(fn func())
}

// Status is the now-playing snapshot published to D-Bus clients.
type Status struct {
	State player.State
	Title string
	File  string
}

// bridge turns D-Bus calls, which arrive on D-Bus goroutines, into posts
// onto the event loop, and serves the last published status.
type bridge struct {
	sched     Scheduler
	transport Transport

	mu     sync.Mutex
	status Status
}

func newBridge(sched Scheduler, transport Transport) *bridge {
	return &bridge{sched: sched, transport: transport}
}

func (b *bridge) update(s Status) {
	b.mu.Lock()
	b.status = s
	b.mu.Unlock()
}

func (b *bridge) snapshot() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

func (b *bridge) playPause() {
	b.sched.Post(func() { b.transport.PlayPause() })
}

func (b *bridge) stop() {
	b.sched.Post(func() { b.transport.Stop() })
}

// play and pause only toggle when the state calls for it. The state is read
// again on the loop since the snapshot may be stale.
func (b *bridge) play(current func() player.State) {
	b.sched.Post(func() {
		if current() != player.Playing {
			b.transport.PlayPause()
		}
	})
}

func (b *bridge) pause(current func() player.State) {
	b.sched.Post(func() {
		if current() == player.Playing {
			b.transport.PlayPause()
		}
	})
}
