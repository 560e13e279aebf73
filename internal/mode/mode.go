// Package mode switches the clip cards between playing clips and staging
// them into the builder playlist.
package mode

import "github.com/llehouerou/announcer/internal/catalogue"

// Mode is the interaction mode of the clip cards.
type Mode int

const (
	Browse Mode = iota // clicking a variant plays it
	Build              // clicking a variant stages it
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Browse:
		return "browse"
	case Build:
		return "build"
	default:
		return "unknown"
	}
}

// Label returns the button text for a variant control in mode m.
func Label(v catalogue.Variant, m Mode) string {
	if m == Build {
		switch v {
		case catalogue.VariantNone:
			return "Add"
		case catalogue.VariantStart:
			return "Add Start"
		case catalogue.VariantMiddle:
			return "Add Middle"
		case catalogue.VariantEnd:
			return "Add End"
		}
		return ""
	}
	switch v {
	case catalogue.VariantNone:
		return "Recording"
	case catalogue.VariantStart:
		return "Start"
	case catalogue.VariantMiddle:
		return "Middle"
	case catalogue.VariantEnd:
		return "End"
	}
	return ""
}

// Labeled is a rendered variant control whose text follows the mode.
type Labeled interface {
	Variant() catalogue.Variant
	SetLabel(label string)
}

// Relabel sets the label of every control from its variant alone.
func Relabel[T Labeled](controls []T, m Mode) {
	for _, c := range controls {
		c.SetLabel(Label(c.Variant(), m))
	}
}

// Controller holds the current mode and notifies listeners on change.
type Controller struct {
	mode      Mode
	listeners []func(Mode)
}

// NewController creates a controller in Browse mode.
func NewController() *Controller {
	return &Controller{mode: Browse}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// StagingVisible reports whether the builder panel is shown.
func (c *Controller) StagingVisible() bool {
	return c.mode == Build
}

// OnChange registers fn to run after every mode transition.
func (c *Controller) OnChange(fn func(Mode)) {
	c.listeners = append(c.listeners, fn)
}

// Set switches to m. Setting the current mode does nothing.
func (c *Controller) Set(m Mode) {
	if m == c.mode {
		return
	}
	c.mode = m
	for _, fn := range c.listeners {
		fn(m)
	}
}

// Toggle switches between Browse and Build and returns the new mode.
func (c *Controller) Toggle() Mode {
	if c.mode == Browse {
		c.Set(Build)
	} else {
		c.Set(Browse)
	}
	return c.mode
}
