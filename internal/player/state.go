// internal/player/state.go
package player

// State is the playback state of a single handle.
//
//	┌──────────┐      play       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Playing │
//	└──────────┘                 └──────────┘
//	     ▲  ▲                      │  │  │
//	     │  └───── end / stop ─────┘  │  │ pause
//	     │                            │  ▼
//	     │          stop         ┌──────────┐
//	     └───────────────────────│  Paused  │
//	                             └──────────┘
//	                                  │ play
//	                                  ▼
//	                               Playing
//
// A handle that reached its natural end is Stopped and starts over from the
// beginning when played again.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
