package cards

import "github.com/llehouerou/announcer/internal/ui/action"

// Source is the action.Msg source name of the cards list.
const Source = "cards"

// Activate requests a click on a variant button.
type Activate struct {
	Transcription string
	File          string
}

// ActionType implements action.Action.
func (a Activate) ActionType() string { return "cards.activate" }

// ActionMsg creates an action.Msg for a cards action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
