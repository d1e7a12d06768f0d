package components

import (
	"fmt"
	"strings"

	"github.com/MikeBiancalana/streak/internal/task"
)

// CalendarView renders a month grid with the selected date highlighted
type CalendarView struct {
	grid     task.MonthGrid
	selected string
	title    string
	theme    Theme
	width    int
}

// NewCalendarView creates a calendar with an optional title line
func NewCalendarView(title string) *CalendarView {
	return &CalendarView{
		title: title,
		theme: NewTheme(false),
		width: 40,
	}
}

// SetGrid replaces the month being shown
func (cv *CalendarView) SetGrid(grid task.MonthGrid) {
	cv.grid = grid
}

// Grid returns the month being shown
func (cv *CalendarView) Grid() task.MonthGrid {
	return cv.grid
}

// SetSelected sets the highlighted date
func (cv *CalendarView) SetSelected(date string) {
	cv.selected = date
}

// SetTitle sets the line rendered above the month name
func (cv *CalendarView) SetTitle(title string) {
	cv.title = title
}

// SetTheme switches the color scheme
func (cv *CalendarView) SetTheme(theme Theme) {
	cv.theme = theme
}

// SetWidth sets the width of the calendar
func (cv *CalendarView) SetWidth(width int) {
	cv.width = width
}

// View renders the calendar
func (cv *CalendarView) View() string {
	var b strings.Builder

	if cv.title != "" {
		b.WriteString(cv.theme.Title.Render(cv.title))
		b.WriteString("\n")
	}
	b.WriteString(cv.theme.Title.Render(fmt.Sprintf("‹ %s %d ›", cv.grid.Month, cv.grid.Year)))
	b.WriteString("\n\n")

	for _, h := range cv.grid.WeekdayHeaders() {
		b.WriteString(cv.theme.Muted.Render(fmt.Sprintf(" %s ", h)))
	}
	b.WriteString("\n")

	for _, week := range cv.grid.Weeks() {
		for _, d := range week {
			b.WriteString(cv.renderDay(d))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cv.renderSelectedSummary())
	b.WriteString("\n")
	b.WriteString(cv.theme.Muted.Render("• done  + streak continues"))

	return b.String()
}

func (cv *CalendarView) renderDay(d *task.Day) string {
	if d == nil {
		return "    "
	}

	marker := " "
	switch {
	case d.StreakContinues:
		marker = "+"
	case d.Completed > 0:
		marker = "•"
	}
	cell := fmt.Sprintf("%2d%s ", d.Day, marker)

	switch {
	case d.Date == cv.selected:
		return cv.theme.DaySelected.Render(cell)
	case d.Future:
		return cv.theme.DayFuture.Render(cell)
	case d.StreakContinues:
		return cv.theme.DayStreak.Render(cell)
	case d.Completed > 0:
		return cv.theme.DayCompleted.Render(cell)
	case d.Today:
		return cv.theme.DayToday.Render(cell)
	default:
		return cv.theme.Text.Render(cell)
	}
}

func (cv *CalendarView) renderSelectedSummary() string {
	d := cv.grid.Lookup(cv.selected)
	if d == nil {
		return cv.theme.Muted.Render(cv.selected)
	}
	return cv.theme.Text.Render(fmt.Sprintf("%s: %d completed", d.Date, d.Completed))
}
