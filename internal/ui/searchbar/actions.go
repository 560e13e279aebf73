package searchbar

import "github.com/llehouerou/announcer/internal/ui/action"

// Source is the action.Msg source name of the search bar.
const Source = "searchbar"

// QueryChanged is sent on every edit of the query text.
type QueryChanged struct {
	Text string
}

// ActionType implements action.Action.
func (a QueryChanged) ActionType() string { return "searchbar.query_changed" }

// ActionMsg creates an action.Msg for a search bar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
