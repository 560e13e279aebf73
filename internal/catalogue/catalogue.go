// Package catalogue holds the clip records the application browses and plays.
package catalogue

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
)

// AudioRef points at one recording, relative to the sound root.
type AudioRef struct {
	File string `json:"file"`
}

// Clip is one catalogue record. A clip is either a standalone recording
// (None set) or a segmented announcement (any of Start, Middle, End set).
type Clip struct {
	ID            int       `json:"-"` // catalogue position, assigned at load
	Transcription string    `json:"transcription"`
	Start         *AudioRef `json:"start,omitempty"`
	Middle        *AudioRef `json:"middle,omitempty"`
	End           *AudioRef `json:"end,omitempty"`
	None          *AudioRef `json:"none,omitempty"`
}

// Variant is the role of a recording within a clip.
type Variant int

const (
	VariantNone Variant = iota
	VariantStart
	VariantMiddle
	VariantEnd
)

// String returns the variant role name.
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "none"
	case VariantStart:
		return "start"
	case VariantMiddle:
		return "middle"
	case VariantEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Control describes one per-variant button of a clip card.
// File is empty when the control is disabled.
type Control struct {
	Variant  Variant
	File     string
	Disabled bool
}

// Ref returns the recording for a variant, or nil.
func (c *Clip) Ref(v Variant) *AudioRef {
	switch v {
	case VariantNone:
		return c.None
	case VariantStart:
		return c.Start
	case VariantMiddle:
		return c.Middle
	case VariantEnd:
		return c.End
	}
	return nil
}

// IsStandalone reports whether the clip is a single recording.
func (c *Clip) IsStandalone() bool {
	return c.None != nil
}

// Controls returns the controls a card shows for this clip, in display order.
// A standalone clip has a single control; anything else gets start, middle
// and end, each disabled when its recording is missing.
func (c *Clip) Controls() []Control {
	if c.IsStandalone() {
		return []Control{{Variant: VariantNone, File: c.None.File}}
	}
	variants := []Variant{VariantStart, VariantMiddle, VariantEnd}
	return lo.Map(variants, func(v Variant, _ int) Control {
		ref := c.Ref(v)
		if ref == nil || ref.File == "" {
			return Control{Variant: v, Disabled: true}
		}
		return Control{Variant: v, File: ref.File}
	})
}

// Resolve returns the path of a recording under the sound root.
func Resolve(root, file string) string {
	return fmt.Sprintf("%s/%s", root, file)
}

// Document is the searchable text of one clip.
type Document struct {
	Ref  string
	Text string
}

// Documents builds one search document per clip, referenced by its
// stringified catalogue position.
func Documents(clips []Clip) []Document {
	return lo.Map(clips, func(c Clip, _ int) Document {
		return Document{Ref: strconv.Itoa(c.ID), Text: c.Transcription}
	})
}
