// internal/app/scheduler.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/announcer/internal/player"
)

// runMsg wakes the program to run posted callbacks.
type runMsg struct{}

// Scheduler is the event loop shared by the audio backend, the search
// debounce and the MPRIS bridge. Callbacks are queued from any goroutine
// and run inside Update, so they see and change model state safely.
//
// Post never blocks: it may be called from inside Update, where sending to
// the program would deadlock.
type Scheduler struct {
	loop *player.Loop
	wake chan struct{}
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		loop: player.NewLoop(),
		wake: make(chan struct{}, 1),
	}
}

// Post queues fn to run on the next turn of the program.
func (s *Scheduler) Post(fn func()) {
	s.loop.Post(fn)
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Wait returns a command that completes when callbacks are queued.
func (s *Scheduler) Wait() tea.Cmd {
	return func() tea.Msg {
		<-s.wake
		return runMsg{}
	}
}

// Drain runs every queued callback, including ones queued while draining.
func (s *Scheduler) Drain() int {
	return s.loop.Drain()
}
