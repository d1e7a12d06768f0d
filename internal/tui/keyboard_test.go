package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys_TabSwitching(t *testing.T) {
	m := newTestModel(t)

	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabCalendar, m.activeTab)

	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabStatistics, m.activeTab)

	pressKey(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabDashboard, m.activeTab, "wraps around")

	pressKey(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabStatistics, m.activeTab)

	pressKey(m, keyRunes("2"))
	assert.Equal(t, TabCalendar, m.activeTab)

	pressKey(m, keyRunes("1"))
	assert.Equal(t, TabDashboard, m.activeTab)
}

func TestKeys_DayNavigationStopsAtToday(t *testing.T) {
	m := newTestModel(t)

	pressKey(m, keyRunes("l"))
	assert.Equal(t, testToday, m.selectedDate, "cannot move past today")

	pressKey(m, keyRunes("h"))
	pressKey(m, keyRunes("h"))
	assert.Equal(t, "2024-01-08", m.selectedDate)

	pressKey(m, keyRunes("l"))
	assert.Equal(t, "2024-01-09", m.selectedDate)

	pressKey(m, keyRunes("t"))
	assert.Equal(t, testToday, m.selectedDate)
}

func TestKeys_DayNavigationFollowsMonth(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 10; i++ {
		pressKey(m, keyRunes("h"))
	}
	assert.Equal(t, "2023-12-31", m.selectedDate)
	assert.Equal(t, 2023, m.viewYear)
	assert.Equal(t, "December", m.viewMonth.String())
}

func TestKeys_CalendarNavigation(t *testing.T) {
	m := newTestModel(t)
	pressKey(m, keyRunes("2"))

	pressKey(m, keyRunes("k"))
	assert.Equal(t, "2024-01-03", m.selectedDate)

	pressKey(m, keyRunes("j"))
	assert.Equal(t, testToday, m.selectedDate)

	pressKey(m, keyRunes("j"))
	assert.Equal(t, testToday, m.selectedDate, "a week ahead would pass today")

	pressKey(m, keyRunes("["))
	assert.Equal(t, "December", m.viewMonth.String())
	assert.Equal(t, testToday, m.selectedDate, "paging does not move the selection")

	pressKey(m, keyRunes("]"))
	pressKey(m, keyRunes("]"))
	assert.Equal(t, "February", m.viewMonth.String())

	pressKey(m, keyRunes("h"))
	assert.Equal(t, "2024-01-09", m.selectedDate)

	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, TabDashboard, m.activeTab)
	assert.Equal(t, "2024-01-09", m.selectedDate)
}

func TestKeys_AddTaskTwoSteps(t *testing.T) {
	m := newTestModel(t)

	cmd := pressKey(m, keyRunes("a"))
	assert.NotNil(t, cmd, "focus returns a blink command")
	require.True(t, m.textEntryBar.IsFocused())

	for _, r := range "Read" {
		pressKey(m, keyRunes(string(r)))
	}
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Read", m.pendingTitle)
	assert.True(t, m.textEntryBar.IsFocused(), "description step")

	for _, r := range "fiction" {
		pressKey(m, keyRunes(string(r)))
	}
	cmd = pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.textEntryBar.IsFocused())
	runCmd(t, m, cmd)

	require.Len(t, m.tasks, 1)
	assert.Equal(t, "Read", m.tasks[0].Title)
	assert.Equal(t, "fiction", m.tasks[0].Description)
}

func TestKeys_AddTaskIgnoresBlankTitle(t *testing.T) {
	m := newTestModel(t)
	pressKey(m, keyRunes("a"))
	pressKey(m, keyRunes(" "))

	cmd := pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "", m.pendingTitle)
	assert.True(t, m.textEntryBar.IsFocused())
}

func TestKeys_AddTaskEscCancels(t *testing.T) {
	m := newTestModel(t)
	pressKey(m, keyRunes("a"))
	pressKey(m, keyRunes("q"))
	assert.Equal(t, "q", m.textEntryBar.GetValue(), "q is typed, not quit")

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.textEntryBar.IsFocused())
	assert.Equal(t, "", m.textEntryBar.GetValue())
	assert.Empty(t, m.store.Tasks())
}

func TestKeys_ToggleCompletion(t *testing.T) {
	m := newTestModel(t, "Drink water")
	id := m.tasks[0].ID

	runCmd(t, m, pressKey(m, keyRunes(" ")))
	assert.True(t, m.store.IsCompletedOn(id, testToday))
	assert.Equal(t, 1, m.tasks[0].Streak)

	runCmd(t, m, pressKey(m, keyRunes(" ")))
	assert.False(t, m.store.IsCompletedOn(id, testToday))
	assert.Equal(t, 0, m.tasks[0].Streak)
}

func TestKeys_ToggleOnSelectedDate(t *testing.T) {
	m := newTestModel(t, "Drink water")
	id := m.tasks[0].ID

	pressKey(m, keyRunes("h"))
	runCmd(t, m, pressKey(m, keyRunes("x")))

	assert.True(t, m.store.IsCompletedOn(id, "2024-01-09"))
	assert.False(t, m.store.IsCompletedOn(id, testToday))
}

func TestKeys_ToggleWithNoTasks(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, pressKey(m, keyRunes(" ")))
}

func TestKeys_DeleteWithConfirm(t *testing.T) {
	m := newTestModel(t, "Drink water", "Read")
	first := m.tasks[0]

	pressKey(m, keyRunes("c"))
	assert.Equal(t, first.ID, m.selectedTaskID)

	pressKey(m, keyRunes("d"))
	require.True(t, m.confirmMode)
	assert.Contains(t, m.View(), "Drink water")

	runCmd(t, m, pressKey(m, keyRunes("y")))

	assert.False(t, m.confirmMode)
	assert.Equal(t, "", m.selectedTaskID, "deleting the open task clears the selection")
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "Read", m.tasks[0].Title)
}

func TestKeys_DeleteDeclined(t *testing.T) {
	m := newTestModel(t, "Drink water")

	pressKey(m, keyRunes("d"))
	require.True(t, m.confirmMode)

	cmd := pressKey(m, keyRunes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirmMode)
	assert.Len(t, m.store.Tasks(), 1)
}

func TestKeys_DetailToggle(t *testing.T) {
	m := newTestModel(t, "Drink water")

	pressKey(m, keyRunes("c"))
	assert.Equal(t, m.tasks[0].ID, m.selectedTaskID)

	pressKey(m, keyRunes("c"))
	assert.Equal(t, "", m.selectedTaskID)
}

func TestKeys_ExpandDescription(t *testing.T) {
	m := newTestModel(t)
	_, err := m.store.AddTask("Read", "fiction")
	require.NoError(t, err)
	runCmd(t, m, m.loadTasks())

	pressKey(m, keyRunes("e"))
	assert.True(t, m.taskList.IsExpanded(m.tasks[0].ID))
	assert.Contains(t, m.View(), "fiction")
}

func TestKeys_ThemeToggle(t *testing.T) {
	m := newTestModel(t)

	runCmd(t, m, pressKey(m, keyRunes("T")))
	assert.True(t, m.theme.Dark)
	assert.True(t, m.store.DarkMode())

	runCmd(t, m, pressKey(m, keyRunes("T")))
	assert.False(t, m.theme.Dark)
	assert.False(t, m.store.DarkMode())
}

func TestKeys_HelpMode(t *testing.T) {
	m := newTestModel(t)

	pressKey(m, keyRunes("?"))
	assert.True(t, m.helpMode)

	pressKey(m, keyRunes("a"))
	assert.False(t, m.textEntryBar.IsFocused(), "keys are ignored in help")

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.helpMode)
}

func TestKeys_Quit(t *testing.T) {
	m := newTestModel(t)

	cmd := pressKey(m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
