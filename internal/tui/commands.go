package tui

import (
	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/MikeBiancalana/streak/internal/logger"
	"github.com/MikeBiancalana/streak/internal/task"
	tea "github.com/charmbracelet/bubbletea"
)

// Command Builders
//
// These methods create tea.Cmd functions for async operations.
// They follow the async closure capture pattern to avoid bugs
// where model state changes between closure creation and execution.
//
// Key principle: Capture all needed values BEFORE returning the closure.

// Messages
type (
	tasksLoadedMsg struct {
		tasks []task.Task
	}
	taskAddedMsg struct {
		task  task.Task
		tasks []task.Task
	}
	taskToggledMsg struct {
		id     string
		date   string
		marked bool
		tasks  []task.Task
	}
	taskDeletedMsg struct {
		id    string
		tasks []task.Task
	}
	themeChangedMsg struct {
		dark bool
	}
	settingsChangedMsg struct {
		settings config.Settings
	}
	errMsg struct {
		err error
	}
)

// loadTasks snapshots the store's tasks
func (m *Model) loadTasks() tea.Cmd {
	capturedStore := m.store

	return func() tea.Msg {
		return tasksLoadedMsg{tasks: capturedStore.Tasks()}
	}
}

// addTask creates a task
func (m *Model) addTask(title, description string) tea.Cmd {
	capturedStore := m.store

	return func() tea.Msg {
		t, err := capturedStore.AddTask(title, description)
		if err != nil {
			return errMsg{err}
		}
		logger.Debug("tui: task added", "id", t.ID)
		return taskAddedMsg{task: t, tasks: capturedStore.Tasks()}
	}
}

// toggleSelected toggles the task under the cursor on the selected date
func (m *Model) toggleSelected() tea.Cmd {
	selected := m.taskList.SelectedTask()
	if selected == nil {
		return nil
	}

	capturedStore := m.store
	capturedID := selected.ID
	capturedDate := m.selectedDate

	return func() tea.Msg {
		marked, err := capturedStore.ToggleCompletion(capturedID, capturedDate)
		if err != nil {
			return errMsg{err}
		}
		return taskToggledMsg{
			id:     capturedID,
			date:   capturedDate,
			marked: marked,
			tasks:  capturedStore.Tasks(),
		}
	}
}

// deleteTask removes the task awaiting confirmation
func (m *Model) deleteTask() tea.Cmd {
	capturedStore := m.store
	capturedID := m.confirmTaskID

	return func() tea.Msg {
		if _, err := capturedStore.DeleteTask(capturedID); err != nil {
			return errMsg{err}
		}
		return taskDeletedMsg{id: capturedID, tasks: capturedStore.Tasks()}
	}
}

// toggleTheme persists the opposite color scheme
func (m *Model) toggleTheme() tea.Cmd {
	capturedStore := m.store
	capturedDark := !m.theme.Dark

	return func() tea.Msg {
		if err := capturedStore.SetDarkMode(capturedDark); err != nil {
			return errMsg{err}
		}
		return themeChangedMsg{dark: capturedDark}
	}
}

// waitForSettingsChange blocks on the config watcher. It returns nil once
// the watcher is stopped so the program does not spin on a closed channel.
func (m *Model) waitForSettingsChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	capturedChanges := m.watcher.Changes()

	return func() tea.Msg {
		event, ok := <-capturedChanges
		if !ok {
			return nil
		}
		return settingsChangedMsg{settings: event.Settings}
	}
}

// prevDay moves the selected date back one day
func (m *Model) prevDay() {
	m.moveSelectedDate(-1)
}

// nextDay moves the selected date forward one day, never past today
func (m *Model) nextDay() {
	m.moveSelectedDate(1)
}

// moveSelectedDate shifts the selected date by n days. Moves that would
// pass today are ignored.
func (m *Model) moveSelectedDate(n int) {
	date, err := task.AddDays(m.selectedDate, n)
	if err != nil {
		// corrupted selection, fall back to today
		m.selectDate(m.store.Today())
		return
	}
	if date > m.store.Today() {
		return
	}

	logger.Debug("tui: selecting date", "oldDate", m.selectedDate, "newDate", date)
	m.selectDate(date)
}

// jumpToToday selects today
func (m *Model) jumpToToday() {
	m.selectDate(m.store.Today())
}

// selectDate sets the selected date and keeps the viewed month on it
func (m *Model) selectDate(date string) {
	m.selectedDate = date
	if d, err := task.ParseDate(date); err == nil {
		m.viewYear, m.viewMonth = d.Year(), d.Month()
	}
	m.taskList.UpdateTasks(m.tasks, date)
	m.refreshCalendar()
}

// shiftMonth pages the viewed month without moving the selected date
func (m *Model) shiftMonth(n int) {
	m.viewYear, m.viewMonth = task.ShiftMonth(m.viewYear, m.viewMonth, n)
	m.refreshCalendar()
}
