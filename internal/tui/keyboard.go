package tui

import (
	"strings"

	"github.com/MikeBiancalana/streak/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Keyboard Handlers
//
// These methods handle keyboard input organized by mode and context.
// The main handleKeyPress dispatcher routes to specific handlers based
// on the current state (text entry mode, confirm mode, normal mode).

// handleKeyPress is the main keyboard input dispatcher
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle text entry bar mode (highest priority)
	if m.textEntryBar.IsFocused() {
		return m.handleTextEntryKeys(msg)
	}

	if m.confirmMode {
		return m.handleConfirmKeys(msg)
	}

	if m.helpMode {
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.helpMode = false
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	return m.handleNormalModeKeys(msg)
}

// handleTextEntryKeys handles keyboard input when the add-task bar is
// focused. Enter on the title moves to the description; enter on the
// description submits.
func (m *Model) handleTextEntryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.pendingTitle = ""
		m.textEntryBar.Reset()
		return m, nil

	case tea.KeyEnter:
		value := m.textEntryBar.GetValue()

		if m.textEntryBar.GetMode() == components.ModeTitle {
			if strings.TrimSpace(value) == "" {
				// blank titles are ignored, keep the bar open
				return m, nil
			}
			m.pendingTitle = value
			m.textEntryBar.Clear()
			m.textEntryBar.SetMode(components.ModeDescription)
			return m, nil
		}

		title := m.pendingTitle
		m.pendingTitle = ""
		m.textEntryBar.Reset()
		return m, m.addTask(title, value)
	}

	var cmd tea.Cmd
	m.textEntryBar, cmd = m.textEntryBar.Update(msg)
	return m, cmd
}

// handleConfirmKeys handles the delete confirmation prompt
func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.deleteTask()
	case key.Matches(msg, m.keys.Decline):
		m.confirmMode = false
		m.confirmTaskID = ""
		return m, nil
	}
	return m, nil
}

// handleNormalModeKeys handles keys shared by every tab, then dispatches
// to the active tab
func (m *Model) handleNormalModeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpMode = true
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.activeTab = (m.activeTab + 1) % TabCount
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.activeTab = (m.activeTab + TabCount - 1) % TabCount
		return m, nil

	case key.Matches(msg, m.keys.Dashboard):
		m.activeTab = TabDashboard
		return m, nil

	case key.Matches(msg, m.keys.Calendar):
		m.activeTab = TabCalendar
		return m, nil

	case key.Matches(msg, m.keys.Stats):
		m.activeTab = TabStatistics
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()

	case key.Matches(msg, m.keys.Add):
		m.lastError = nil
		m.textEntryBar.SetMode(components.ModeTitle)
		return m, m.textEntryBar.Focus()

	case key.Matches(msg, m.keys.Today):
		m.jumpToToday()
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)
		return m, nil
	}

	switch m.activeTab {
	case TabCalendar:
		return m.handleCalendarKeys(msg)
	case TabDashboard:
		return m.handleDashboardKeys(msg)
	}
	return m, nil
}

// handleDashboardKeys handles the task list
func (m *Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.taskList.CursorUp()

	case key.Matches(msg, m.keys.Down):
		m.taskList.CursorDown()

	case key.Matches(msg, m.keys.PrevDay):
		m.prevDay()

	case key.Matches(msg, m.keys.NextDay):
		m.nextDay()

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		if t := m.taskList.SelectedTask(); t != nil {
			m.confirmMode = true
			m.confirmTaskID = t.ID
		}

	case key.Matches(msg, m.keys.Detail):
		t := m.taskList.SelectedTask()
		if t == nil {
			return m, nil
		}
		if m.selectedTaskID == t.ID {
			m.selectedTaskID = ""
		} else {
			m.selectedTaskID = t.ID
		}
		m.taskList.SetDetailTask(m.selectedTaskID)

	case key.Matches(msg, m.keys.Expand):
		if t := m.taskList.SelectedTask(); t != nil {
			m.taskList.ToggleExpanded(t.ID)
		}
	}
	return m, nil
}

// handleCalendarKeys moves the selected date around the month grid
func (m *Model) handleCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		m.moveSelectedDate(-1)

	case key.Matches(msg, m.keys.NextDay):
		m.moveSelectedDate(1)

	case key.Matches(msg, m.keys.PrevWeek):
		m.moveSelectedDate(-7)

	case key.Matches(msg, m.keys.NextWeek):
		m.moveSelectedDate(7)

	case key.Matches(msg, m.keys.SetDate):
		m.activeTab = TabDashboard
	}
	return m, nil
}
