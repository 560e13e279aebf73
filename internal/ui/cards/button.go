package cards

import "github.com/llehouerou/announcer/internal/catalogue"

// Button is one variant control on a clip card. Its label follows the
// mode; its file and disabled state come from the clip and never change.
type Button struct {
	variant  catalogue.Variant
	file     string
	disabled bool
	label    string
}

func newButton(c catalogue.Control) *Button {
	return &Button{variant: c.Variant, file: c.File, disabled: c.Disabled}
}

// Variant implements mode.Labeled.
func (b *Button) Variant() catalogue.Variant { return b.variant }

// SetLabel implements mode.Labeled.
func (b *Button) SetLabel(label string) { b.label = label }

// Label returns the current button text.
func (b *Button) Label() string { return b.label }

// File returns the recording the button plays, empty when disabled.
func (b *Button) File() string { return b.file }

// Disabled reports whether the clip lacks this recording.
func (b *Button) Disabled() bool { return b.disabled }

// Card is the rendered form of one clip.
type Card struct {
	Clip    catalogue.Clip
	Buttons []*Button
	visible bool
}

func newCard(c catalogue.Clip) *Card {
	controls := c.Controls()
	buttons := make([]*Button, len(controls))
	for i, ctl := range controls {
		buttons[i] = newButton(ctl)
	}
	return &Card{Clip: c, Buttons: buttons, visible: true}
}

// Visible reports whether the card passes the current filter.
func (c *Card) Visible() bool { return c.visible }
