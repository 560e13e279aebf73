package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionSearch      Action = "search"
	ActionToggleMode  Action = "toggle_mode"
	ActionHelp        Action = "help"

	// Transport
	ActionPlayPause Action = "play_pause"
	ActionStop      Action = "stop"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Cards
	ActionActivate Action = "activate"

	// Builder panel
	ActionRemoveEntry Action = "remove_entry"
	ActionMoveEntryUp Action = "move_entry_up"
	ActionMoveEntryDn Action = "move_entry_down"
	ActionPlayAll     Action = "play_all"

	// Search bar
	ActionClearSearch Action = "clear_search"
	ActionCloseSearch Action = "close_search"
)
