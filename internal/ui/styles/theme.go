package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // focused items, active states
	Secondary lipgloss.Color // builder mode accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Variant buttons on clip cards
	Button         lipgloss.Style
	ButtonSelected lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonBuild    lipgloss.Style // selected button in builder mode
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	button := lipgloss.NewStyle().Padding(0, 1)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),

		Button: button.Foreground(t.FgBase).Background(t.BgCursor),
		ButtonSelected: button.
			Foreground(t.BgBase).
			Background(t.Primary).
			Bold(true),
		ButtonDisabled: button.Foreground(t.FgSubtle).Strikethrough(true),
		ButtonBuild: button.
			Foreground(t.BgBase).
			Background(t.Secondary).
			Bold(true),
	}
}
