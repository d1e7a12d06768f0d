package components

import "github.com/charmbracelet/lipgloss"

// Theme is the set of styles shared by every pane. Light and dark variants
// differ only in colors.
type Theme struct {
	Dark bool

	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Done      lipgloss.Style
	Streak    lipgloss.Style
	Selected  lipgloss.Style
	Border    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Status    lipgloss.Style

	// Calendar cells
	DayCompleted lipgloss.Style
	DayStreak    lipgloss.Style
	DayToday     lipgloss.Style
	DaySelected  lipgloss.Style
	DayFuture    lipgloss.Style
}

type palette struct {
	text, muted, accent, done, streak, border, selBg, selFg, statusBg, statusFg string
}

var (
	lightPalette = palette{
		text: "235", muted: "244", accent: "25", done: "28", streak: "166",
		border: "250", selBg: "153", selFg: "16", statusBg: "254", statusFg: "238",
	}
	darkPalette = palette{
		text: "252", muted: "243", accent: "75", done: "42", streak: "214",
		border: "240", selBg: "238", selFg: "15", statusBg: "236", statusFg: "248",
	}
)

// NewTheme returns the dark or light theme
func NewTheme(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Theme{
		Dark:      dark,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.text)),
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color(p.muted)),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true).Foreground(lipgloss.Color(p.accent)),
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Done:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.done)),
		Streak:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.streak)),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color(p.selBg)).Foreground(lipgloss.Color(p.selFg)),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(p.done)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.statusFg)).
			Background(lipgloss.Color(p.statusBg)).
			Padding(0, 1),

		DayCompleted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.done)),
		DayStreak:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.streak)),
		DayToday:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(p.accent)),
		DaySelected:  lipgloss.NewStyle().Reverse(true),
		DayFuture:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color(p.muted)),
	}
}
