package playback

// NothingPlaying is the now-playing label shown after an explicit stop.
const NothingPlaying = "Nothing playing"

// Panel is the state of the single "now playing" slot.
type Panel struct {
	Visible bool   // panel shown
	Label   string // display name, or an error message when Err is set
	Playing bool   // pause affordance shown instead of play
	Err     bool   // Label holds a load or play failure
}

func idlePanel() Panel {
	return Panel{Label: NothingPlaying}
}
