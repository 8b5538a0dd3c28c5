package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the styles used by the dashboard
type Styles struct {
	App   lipgloss.Style
	Title lipgloss.Style

	TimerRunning lipgloss.Style
	TimerStopped lipgloss.Style
	TimerElapsed lipgloss.Style

	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	EntryTime     lipgloss.Style
	EntryDesc     lipgloss.Style
	EntryDuration lipgloss.Style
	EntryProject  lipgloss.Style

	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	InputFocused lipgloss.Style
	Error        lipgloss.Style
}

// palette is the small set of colors a theme provides
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	text      lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	errorC    lipgloss.TerminalColor
}

// themePalette picks a palette for the configured theme. "system"
// adapts to the terminal background, "light" and "dark" are fixed.
func themePalette(theme string) palette {
	switch theme {
	case "light":
		return palette{
			primary:   lipgloss.Color("55"),
			secondary: lipgloss.Color("26"),
			accent:    lipgloss.Color("162"),
			muted:     lipgloss.Color("245"),
			text:      lipgloss.Color("235"),
			success:   lipgloss.Color("28"),
			errorC:    lipgloss.Color("124"),
		}
	case "dark":
		return palette{
			primary:   lipgloss.Color("99"),
			secondary: lipgloss.Color("39"),
			accent:    lipgloss.Color("212"),
			muted:     lipgloss.Color("240"),
			text:      lipgloss.Color("252"),
			success:   lipgloss.Color("82"),
			errorC:    lipgloss.Color("196"),
		}
	default:
		return palette{
			primary:   lipgloss.AdaptiveColor{Light: "55", Dark: "99"},
			secondary: lipgloss.AdaptiveColor{Light: "26", Dark: "39"},
			accent:    lipgloss.AdaptiveColor{Light: "162", Dark: "212"},
			muted:     lipgloss.AdaptiveColor{Light: "245", Dark: "240"},
			text:      lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
			success:   lipgloss.AdaptiveColor{Light: "28", Dark: "82"},
			errorC:    lipgloss.AdaptiveColor{Light: "124", Dark: "196"},
		}
	}
}

// NewStyles builds the dashboard styles for the configured theme
func NewStyles(theme string) Styles {
	p := themePalette(theme)

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),

		TimerRunning: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		TimerStopped: lipgloss.NewStyle().
			Foreground(p.muted),
		TimerElapsed: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted),
		StatValue: lipgloss.NewStyle().
			Foreground(p.text),

		EntryTime: lipgloss.NewStyle().
			Foreground(p.secondary),
		EntryDesc: lipgloss.NewStyle().
			Foreground(p.text),
		EntryDuration: lipgloss.NewStyle().
			Foreground(p.accent).
			Width(10),
		EntryProject: lipgloss.NewStyle().
			Foreground(p.primary),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.text).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(p.errorC).
			Bold(true),
	}
}
