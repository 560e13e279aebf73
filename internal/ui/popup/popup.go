// Package popup renders centered dialogs and overlays them on a view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/announcer/internal/ui/styles"
)

// Style configures the popup appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default popup style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Border,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a centered box with a title, content and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = auto-fit content
	Style   Style
}

// New creates a new dialog with default style.
func New() *Dialog {
	return &Dialog{
		Style: DefaultStyle(),
	}
}

// Render returns the dialog centered in a termWidth x termHeight area.
func (p *Dialog) Render(termWidth, termHeight int) string {
	style := p.Style

	innerWidth := p.Width
	if innerWidth == 0 {
		innerWidth = max(maxLineWidth(p.Content), lipgloss.Width(p.Title), lipgloss.Width(p.Footer))
	}
	innerWidth = max(min(innerWidth, termWidth-4), 1)

	var lines []string
	if p.Title != "" {
		lines = append(lines, centerLine(style.TitleStyle.Render(p.Title), innerWidth), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		if lipgloss.Width(line) > innerWidth {
			line = ansi.Truncate(line, innerWidth, "...")
		}
		lines = append(lines, padLine(line, innerWidth))
	}
	if p.Footer != "" {
		lines = append(lines, "", centerLine(style.FooterStyle.Render(p.Footer), innerWidth))
	}

	box := lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		Padding(0, 1).
		Width(innerWidth+2). // lipgloss counts padding in Width
		Render(strings.Join(lines, "\n"))

	return Center(box, termWidth, termHeight)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func padLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Center centers pre-rendered content in the terminal.
func Center(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	boxWidth := maxLineWidth(box)

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

// Compose overlays popupView on base. Visually blank overlay lines keep the
// base line; elsewhere the overlay's visible span replaces the base columns
// it covers. ANSI-aware.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// A wide character cut in half leaves the prefix short; pad it back.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		line := prefix + content
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			if w := ansi.StringWidth(suffix); w < width-endCol {
				suffix += strings.Repeat(" ", width-endCol-w)
			}
			line += suffix
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}
