// internal/app/messages.go
package app

import "github.com/llehouerou/announcer/internal/catalogue"

// catalogueLoadedMsg carries the result of the startup catalogue load.
type catalogueLoadedMsg struct {
	clips []catalogue.Clip
	err   error
}

// stderrMsg is a line captured from a C library writing to stderr.
type stderrMsg string

// FocusTarget is the panel receiving list keys.
type FocusTarget int

const (
	FocusCards FocusTarget = iota
	FocusBuilder
)

// context returns the keymap context of the focused panel.
func (f FocusTarget) context() string {
	if f == FocusBuilder {
		return "builder"
	}
	return "cards"
}
