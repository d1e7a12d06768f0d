package tui

import (
	"github.com/MikeBiancalana/streak/internal/logger"
	"github.com/MikeBiancalana/streak/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// Message Handlers
//
// These methods handle specific message types, keeping the main Update()
// function clean and focused. Each handler follows the pattern:
//
//   func (m *Model) handle<MessageType>(msg <MessageType>) (tea.Model, tea.Cmd)
//
// This makes handlers testable in isolation and easy to understand.

// handleWindowSize handles terminal resize events
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Check if terminal meets minimum dimensions
	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight

	if m.statusBar != nil {
		m.statusBar.SetWidth(msg.Width)
	}
	if m.textEntryBar != nil {
		m.textEntryBar.SetWidth(msg.Width)
	}
	m.help.Width = msg.Width

	// Only calculate pane dimensions if terminal is large enough
	if !m.terminalTooSmall {
		dims := CalculatePaneDimensions(msg.Width, msg.Height)
		if m.taskList != nil {
			m.taskList.SetSize(dims.ContentWidth-BorderWidth-2, dims.ContentHeight-BorderHeight)
		}
		if m.calendarView != nil {
			m.calendarView.SetWidth(dims.ContentWidth)
		}
		if m.detailView != nil {
			m.detailView.SetWidth(dims.DetailWidth)
		}
		if m.statsView != nil {
			m.statsView.SetWidth(dims.ContentWidth)
		}
	}

	return m, nil
}

// handleTasksLoaded handles tasks loaded message
func (m *Model) handleTasksLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	logger.Debug("tui: handling tasksLoadedMsg", "taskCount", len(msg.tasks))
	m.setTasks(msg.tasks)
	return m, nil
}

// handleTaskAdded refreshes the views and clears any previous error
func (m *Model) handleTaskAdded(msg taskAddedMsg) (tea.Model, tea.Cmd) {
	logger.Info("tui: task added", "id", msg.task.ID, "title", msg.task.Title)
	m.lastError = nil
	m.setTasks(msg.tasks)
	return m, nil
}

// handleTaskToggled refreshes the views after a completion toggle
func (m *Model) handleTaskToggled(msg taskToggledMsg) (tea.Model, tea.Cmd) {
	logger.Debug("tui: task toggled", "id", msg.id, "date", msg.date, "marked", msg.marked)
	m.lastError = nil
	m.setTasks(msg.tasks)
	return m, nil
}

// handleTaskDeleted leaves confirm mode and drops the selection if it
// pointed at the deleted task
func (m *Model) handleTaskDeleted(msg taskDeletedMsg) (tea.Model, tea.Cmd) {
	logger.Info("tui: task deleted", "id", msg.id)

	m.confirmMode = false
	m.confirmTaskID = ""
	m.lastError = nil
	if m.selectedTaskID == msg.id {
		m.selectedTaskID = ""
	}
	m.setTasks(msg.tasks)
	return m, nil
}

// handleThemeChanged switches every component to the new color scheme
func (m *Model) handleThemeChanged(msg themeChangedMsg) (tea.Model, tea.Cmd) {
	m.applyTheme(components.NewTheme(msg.dark))
	return m, nil
}

// handleSettingsChanged applies a reloaded config.toml and waits for the
// next change
func (m *Model) handleSettingsChanged(msg settingsChangedMsg) (tea.Model, tea.Cmd) {
	logger.Info("tui: settings reloaded",
		"streak_mode", msg.settings.StreakMode,
		"week_start", msg.settings.WeekStart)

	m.settings = msg.settings
	m.store.SetStreakMode(msg.settings.StreakMode)
	m.refreshCalendar()
	return m, m.waitForSettingsChange()
}

// handleError handles error messages
func (m *Model) handleError(msg errMsg) (tea.Model, tea.Cmd) {
	logger.Error("tui: error", "error", msg.err)
	m.lastError = msg.err
	return m, nil
}
