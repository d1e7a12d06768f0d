package components

import (
	"strings"
	"testing"
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/stretchr/testify/assert"
)

func TestCalendarView_RendersMonth(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Title: "A", CompletedDates: []string{"2024-01-04", "2024-01-05"}},
		{ID: "b", Title: "B", CompletedDates: []string{"2024-01-05"}},
	}
	grid := task.Month(tasks, 2024, time.January, "2024-01-10", config.WeekStartSunday)

	cv := NewCalendarView("")
	cv.SetGrid(grid)
	cv.SetSelected("2024-01-05")
	view := cv.View()

	assert.Contains(t, view, "January 2024")
	assert.Contains(t, view, " Su  Mo ")
	assert.Contains(t, view, "2024-01-05: 2 completed")
	assert.Contains(t, view, " 5+", "streak continuation marker")
	assert.Contains(t, view, " 4•", "completion marker")
	assert.Equal(t, grid, cv.Grid())
}

func TestCalendarView_MondayFirstHeaders(t *testing.T) {
	grid := task.Month(nil, 2024, time.January, "2024-01-10", config.WeekStartMonday)

	cv := NewCalendarView("Drink water")
	cv.SetGrid(grid)
	view := cv.View()

	lines := strings.Split(view, "\n")
	assert.Equal(t, "Drink water", strings.TrimSpace(lines[0]))
	assert.Contains(t, view, " Mo  Tu ")
	// January 2024 starts on a Monday, so the first week has no blanks
	assert.Contains(t, view, "\n 1  ")
}

func TestCalendarView_SelectedOutsideMonth(t *testing.T) {
	grid := task.Month(nil, 2024, time.February, "2024-03-01", config.WeekStartSunday)

	cv := NewCalendarView("")
	cv.SetGrid(grid)
	cv.SetSelected("2024-01-31")

	assert.Contains(t, cv.View(), "2024-01-31")
	assert.NotContains(t, cv.View(), "completed")
}
