package components

import (
	"fmt"
	"strings"

	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/charmbracelet/lipgloss"
)

// StatsView renders the statistics tab: the cross-task summary followed by
// one card per task
type StatsView struct {
	tasks []task.Task
	theme Theme
	width int
}

func NewStatsView() *StatsView {
	return &StatsView{theme: NewTheme(false)}
}

func (sv *StatsView) SetTasks(tasks []task.Task) {
	sv.tasks = tasks
}

func (sv *StatsView) SetTheme(theme Theme) {
	sv.theme = theme
}

func (sv *StatsView) SetWidth(width int) {
	sv.width = width
}

func (sv *StatsView) View() string {
	if len(sv.tasks) == 0 {
		return sv.theme.Muted.Render("No tasks added yet. Add your first task to start building streaks!")
	}

	summary := task.Summarize(sv.tasks)
	var b strings.Builder
	b.WriteString(sv.label("Tasks: ") + sv.value(summary.TotalTasks) + "  " +
		sv.label("Active: ") + sv.value(summary.ActiveTasks) + "  " +
		sv.label("Completions: ") + sv.value(summary.TotalCompletions) + "  " +
		sv.label("Total Streaks: ") + sv.value(summary.TotalStreaks))
	b.WriteString("\n\n")

	cardWidth := sv.width - 4
	if cardWidth < 30 {
		cardWidth = 30
	}
	for _, t := range sv.tasks {
		b.WriteString(sv.renderCard(t, cardWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func (sv *StatsView) renderCard(t task.Task, width int) string {
	s := task.ComputeStats(t)
	rows := []string{
		sv.theme.Title.Render(t.Title),
		sv.label("Total Days:      ") + sv.value(s.TotalDays),
		sv.label("Completion Rate: ") + sv.theme.Text.Render(s.CompletionRateFormatted()),
		sv.label("Longest Streak:  ") + sv.value(s.LongestStreak),
		sv.label("Current Streak:  ") + sv.theme.Streak.Render(fmt.Sprint(s.CurrentStreak)),
	}
	return sv.theme.Border.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (sv *StatsView) label(s string) string {
	return sv.theme.Muted.Render(s)
}

func (sv *StatsView) value(n int) string {
	return sv.theme.Text.Render(fmt.Sprint(n))
}
