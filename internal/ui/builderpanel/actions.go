package builderpanel

import "github.com/llehouerou/announcer/internal/ui/action"

// Source is the action.Msg source name of the builder panel.
const Source = "builder"

// RemoveEntry requests removal of the staged entry at Index.
type RemoveEntry struct {
	Index int
}

// ActionType implements action.Action.
func (a RemoveEntry) ActionType() string { return "builder.remove_entry" }

// MoveEntry requests moving a staged entry from one position to another.
type MoveEntry struct {
	From, To int
}

// ActionType implements action.Action.
func (a MoveEntry) ActionType() string { return "builder.move_entry" }

// PlayAll requests sequential playback of the staged entries.
type PlayAll struct{}

// ActionType implements action.Action.
func (a PlayAll) ActionType() string { return "builder.play_all" }

// ActionMsg creates an action.Msg for a builder panel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
