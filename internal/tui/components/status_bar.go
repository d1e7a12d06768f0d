package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows the selected date, the streak total and a transient
// message
type StatusBar struct {
	width        int
	date         string
	dateLabel    string
	totalStreaks int
	message      string
	isError      bool
	theme        Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{theme: NewTheme(false)}
}

// SetWidth sets the width of the status bar
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// SetTheme switches the color scheme
func (sb *StatusBar) SetTheme(theme Theme) {
	sb.theme = theme
}

// SetDate sets the selected date and its human label ("today", "yesterday")
func (sb *StatusBar) SetDate(date, label string) {
	sb.date = date
	sb.dateLabel = label
}

// SetTotalStreaks sets the sum of every task's streak
func (sb *StatusBar) SetTotalStreaks(n int) {
	sb.totalStreaks = n
}

// SetMessage shows msg until the next call; isError renders it in red
func (sb *StatusBar) SetMessage(msg string, isError bool) {
	sb.message = msg
	sb.isError = isError
}

// View renders the status bar
func (sb *StatusBar) View() string {
	left := sb.date
	if sb.dateLabel != "" && sb.dateLabel != sb.date {
		left = fmt.Sprintf("%s (%s)", sb.date, sb.dateLabel)
	}
	right := fmt.Sprintf("Total Streaks: %d", sb.totalStreaks)

	if sb.message != "" {
		style := sb.theme.Success
		if sb.isError {
			style = sb.theme.Error
		}
		left += "  " + style.Render(sb.message)
	}

	gap := sb.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := left + fmt.Sprintf("%*s", gap, "") + right

	return sb.theme.Status.Width(sb.width).MaxWidth(sb.width).Render(line)
}
