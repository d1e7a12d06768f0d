package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestMinimumTerminalSizeConstants(t *testing.T) {
	if MinTerminalWidth != 80 {
		t.Errorf("Expected MinTerminalWidth to be 80, got %d", MinTerminalWidth)
	}

	if MinTerminalHeight != 24 {
		t.Errorf("Expected MinTerminalHeight to be 24, got %d", MinTerminalHeight)
	}
}

func TestTerminalTooSmallViewContent(t *testing.T) {
	model := &Model{
		terminalTooSmall: true,
		width:            60,
		height:           20,
	}

	view := model.terminalTooSmallView()

	expectedTexts := []string{
		"Terminal Too Small",
		"Current: 60x20",
		"Required: 80x24 or larger",
		"Resize your terminal",
	}

	for _, expected := range expectedTexts {
		if !strings.Contains(view, expected) {
			t.Errorf("Expected view to contain '%s', but got view: %s", expected, view)
		}
	}
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t, "Drink water")

	assert.Equal(t, TabDashboard, m.activeTab)
	assert.Equal(t, testToday, m.selectedDate)
	assert.Equal(t, "", m.selectedTaskID)
	assert.Equal(t, 2024, m.viewYear)
	assert.Equal(t, time.January, m.viewMonth)
	assert.False(t, m.theme.Dark)
	assert.Len(t, m.tasks, 1)
}

func TestNewModel_UsesPersistedTheme(t *testing.T) {
	m := newTestModel(t)
	assert.NoError(t, m.store.SetDarkMode(true))

	m2 := NewModel(m.store, m.settings)
	assert.True(t, m2.theme.Dark)
}

func TestTabName(t *testing.T) {
	assert.Equal(t, "Dashboard", tabName(TabDashboard))
	assert.Equal(t, "Calendar", tabName(TabCalendar))
	assert.Equal(t, "Statistics", tabName(TabStatistics))
	assert.Equal(t, "Unknown", tabName(TabCount))
}

func TestView_Dashboard(t *testing.T) {
	m := newTestModel(t, "Drink water", "Read")

	view := m.View()
	assert.Contains(t, view, "Daily Streak Tracker")
	assert.Contains(t, view, "1 Dashboard")
	assert.Contains(t, view, "Drink water")
	assert.Contains(t, view, "Read")
	assert.Contains(t, view, "2024-01-10 (today)")
	assert.Contains(t, view, "Total Streaks: 0")
}

func TestView_EmptyDashboard(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "No tasks added yet")
}

func TestView_CalendarAndStatistics(t *testing.T) {
	m := newTestModel(t, "Drink water")

	m.activeTab = TabCalendar
	assert.Contains(t, m.View(), "January 2024")

	m.activeTab = TabStatistics
	view := m.View()
	assert.Contains(t, view, "Completion Rate")
	assert.Contains(t, view, "Drink water")
}

func TestView_DetailPane(t *testing.T) {
	m := newTestModel(t, "Drink water")
	pressKey(m, keyRunes("c"))

	view := m.View()
	assert.Contains(t, view, "January 2024")
	assert.Contains(t, view, "Longest: 0")
}

func TestView_TerminalTooSmall(t *testing.T) {
	m := newTestModel(t, "Drink water")
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	assert.Contains(t, m.View(), "Terminal Too Small")
}

func TestView_HelpMode(t *testing.T) {
	m := newTestModel(t)
	pressKey(m, keyRunes("?"))

	view := m.View()
	assert.Contains(t, view, "Help - Key Bindings")
	assert.Contains(t, view, "toggle done")
	assert.False(t, m.help.ShowAll, "full help is only shown while rendering")
}
