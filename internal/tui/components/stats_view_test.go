package components

import (
	"testing"

	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/stretchr/testify/assert"
)

func TestStatsView_Empty(t *testing.T) {
	sv := NewStatsView()
	assert.Contains(t, sv.View(), "No tasks added yet")
}

func TestStatsView_RendersSummaryAndCards(t *testing.T) {
	sv := NewStatsView()
	sv.SetWidth(60)
	sv.SetTasks([]task.Task{
		{ID: "a", Title: "Run", CompletedDates: []string{"2024-01-01", "2024-01-03"}, Streak: 1},
		{ID: "b", Title: "Read", CompletedDates: []string{}},
	})

	view := sv.View()
	assert.Contains(t, view, "Tasks: 2")
	assert.Contains(t, view, "Active: 1")
	assert.Contains(t, view, "Completions: 2")
	assert.Contains(t, view, "Total Streaks: 1")
	assert.Contains(t, view, "Run")
	assert.Contains(t, view, "66.7%")
	assert.Contains(t, view, "0.0%")
}

func TestStatsView_ThemeSwitch(t *testing.T) {
	sv := NewStatsView()
	sv.SetTheme(NewTheme(true))
	assert.True(t, sv.theme.Dark)
}
