// Package notify announces finished playlist runs on the desktop.
package notify

import "github.com/dustin/go-humanize"

// Notice is one desktop notification.
type Notice struct {
	Summary    string
	Body       string
	ReplacesID uint32 // 0 shows a new notice
}

// Bus delivers notices and returns the id the notification server gave
// the shown notice.
type Bus interface {
	Send(n Notice) (uint32, error)
}

// Notifier keeps a single "playlist finished" notice on screen. Every
// run replaces the notice of the run before it.
type Notifier struct {
	bus  Bus
	last uint32
}

// New creates a notifier sending through bus.
func New(bus Bus) *Notifier {
	return &Notifier{bus: bus}
}

// Finished announces a run that played its last clip to the end.
func (n *Notifier) Finished(played int) error {
	id, err := n.bus.Send(Notice{
		Summary:    "Playlist finished",
		Body:       finishedBody(played),
		ReplacesID: n.last,
	})
	if err != nil {
		return err
	}
	n.last = id
	return nil
}

func finishedBody(played int) string {
	clips := "clips"
	if played == 1 {
		clips = "clip"
	}
	return humanize.Comma(int64(played)) + " " + clips + " played"
}
