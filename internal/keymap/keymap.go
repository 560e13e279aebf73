// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "cards", "builder", "search"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", Global},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", Global},
	{ActionSearch, []string{"/"}, "Search", Global},
	{ActionToggleMode, []string{"b"}, "Toggle builder mode", Global},
	{ActionHelp, []string{"?"}, "Show key bindings", Global},
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", Global},
	{ActionStop, []string{"s"}, "Stop", Global},

	// Cards
	{ActionMoveDown, []string{"j", "down"}, "Next clip", "cards"},
	{ActionMoveUp, []string{"k", "up"}, "Previous clip", "cards"},
	{ActionMoveLeft, []string{"h", "left"}, "Previous variant", "cards"},
	{ActionMoveRight, []string{"l", "right"}, "Next variant", "cards"},
	{ActionJumpStart, []string{"g", "home"}, "First clip", "cards"},
	{ActionJumpEnd, []string{"G", "end"}, "Last clip", "cards"},
	{ActionActivate, []string{"enter"}, "Play or add variant", "cards"},

	// Builder panel
	{ActionMoveDown, []string{"j", "down"}, "Move down", "builder"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "builder"},
	{ActionRemoveEntry, []string{"d", "delete", "x"}, "Remove entry", "builder"},
	{ActionMoveEntryDn, []string{"shift+j", "J"}, "Move entry down", "builder"},
	{ActionMoveEntryUp, []string{"shift+k", "K"}, "Move entry up", "builder"},
	{ActionPlayAll, []string{"p", "enter"}, "Play all", "builder"},

	// Search bar
	{ActionClearSearch, []string{"esc"}, "Clear search", "search"},
	{ActionCloseSearch, []string{"enter"}, "Keep filter", "search"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
