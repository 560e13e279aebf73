// Package playerbar renders the now-playing panel.
package playerbar

import (
	"github.com/llehouerou/announcer/internal/playback"
	"github.com/llehouerou/announcer/internal/ui/render"
)

// Height is the number of rows the bar takes when shown.
const Height = 3 // top border + content + bottom border

// Hint lists the transport keys shown on the right of the bar.
const Hint = "space play/pause · s stop"

// Render returns the bar for panel p, or "" when the panel is hidden.
func Render(p playback.Panel, width int) string {
	if !p.Visible {
		return ""
	}

	// border + horizontal padding
	innerWidth := max(width-6, 0)

	var left string
	if p.Err {
		left = errorStyle().Render(errorSymbol + "  " + render.Truncate(p.Label, max(innerWidth-3, 0)))
		return barStyle().Padding(0, 2).Width(width - 2).Render(left)
	}

	status := playSymbol
	if p.Playing {
		// Playing shows the pause affordance.
		status = pauseSymbol
	}
	hint := hintStyle().Render(Hint)
	labelWidth := max(innerWidth-3-len([]rune(Hint))-1, 1)
	left = status + "  " + labelStyle().Render(render.Truncate(p.Label, labelWidth))

	return barStyle().Padding(0, 2).Width(width - 2).Render(render.Row(left, hint, innerWidth))
}
