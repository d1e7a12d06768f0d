package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/MikeBiancalana/streak/internal/sync"
	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/MikeBiancalana/streak/internal/tui/components"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab is one of the top-level views
//
// Async Closure Capture Pattern
// ==============================
// Store calls run inside tea.Cmd closures. Go closures capture variables by
// reference, so a closure that reads m.selectedDate when it executes may see
// a date the user has already navigated away from.
//
// WRONG (buggy):
//
//	func (m *Model) toggleSelected() tea.Cmd {
//	    return func() tea.Msg {
//	        // BUG: m.selectedDate may have changed by the time this runs!
//	        _, err := m.store.ToggleCompletion(id, m.selectedDate)
//	        ...
//	    }
//	}
//
// CORRECT (captured values):
//
//	func (m *Model) toggleSelected() tea.Cmd {
//	    capturedStore := m.store
//	    capturedDate := m.selectedDate
//	    return func() tea.Msg {
//	        _, err := capturedStore.ToggleCompletion(id, capturedDate)
//	        ...
//	    }
//	}
//
// Key principles:
// 1. Capture all model values you need BEFORE returning the closure
// 2. Use descriptive variable names: capturedXxx for clarity
// 3. Mutate model state in handlers, never inside the closure
type Tab int

const (
	TabDashboard Tab = iota
	TabCalendar
	TabStatistics
	TabCount // Keep this last to get the count
)

const (
	TabNameDashboard  = "Dashboard"
	TabNameCalendar   = "Calendar"
	TabNameStatistics = "Statistics"
)

// tabName returns the display name for a tab
func tabName(t Tab) string {
	switch t {
	case TabDashboard:
		return TabNameDashboard
	case TabCalendar:
		return TabNameCalendar
	case TabStatistics:
		return TabNameStatistics
	default:
		return "Unknown"
	}
}

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 80
	MinTerminalHeight = 24
)

// Model represents the main TUI state. Selection, active tab and the
// viewed month live only here; the store holds persisted state.
type Model struct {
	store    *task.Store
	settings config.Settings
	watcher  *sync.Watcher
	keys     KeyMap
	help     help.Model
	theme    components.Theme

	tasks          []task.Task
	activeTab      Tab
	selectedDate   string
	selectedTaskID string // task whose detail calendar is open
	viewYear       int
	viewMonth      time.Month
	width          int
	height         int

	// Components
	taskList     *components.TaskList
	detailView   *components.CalendarView
	calendarView *components.CalendarView
	statsView    *components.StatsView
	textEntryBar *components.TextEntryBar
	statusBar    *components.StatusBar

	// State for modes
	helpMode      bool
	confirmMode   bool
	confirmTaskID string
	pendingTitle  string // title held while the description is typed
	lastError     error

	// Terminal size validation
	terminalTooSmall bool
}

// NewModel creates the TUI model over store. The selected date starts at
// the store's today.
func NewModel(store *task.Store, settings config.Settings) *Model {
	today := store.Today()
	todayTime, _ := task.ParseDate(today)
	theme := components.NewTheme(store.DarkMode())

	m := &Model{
		store:        store,
		settings:     settings,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		theme:        theme,
		activeTab:    TabDashboard,
		selectedDate: today,
		viewYear:     todayTime.Year(),
		viewMonth:    todayTime.Month(),
		taskList:     components.NewTaskList(nil, today),
		detailView:   components.NewCalendarView(""),
		calendarView: components.NewCalendarView(""),
		statsView:    components.NewStatsView(),
		textEntryBar: components.NewTextEntryBar(),
		statusBar:    components.NewStatusBar(),
	}
	m.applyTheme(theme)
	m.setTasks(store.Tasks())
	return m
}

// SetWatcher attaches a config watcher; settings changes are applied live
func (m *Model) SetWatcher(w *sync.Watcher) {
	m.watcher = w
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadTasks()}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForSettingsChange())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg)

	case taskAddedMsg:
		return m.handleTaskAdded(msg)

	case taskToggledMsg:
		return m.handleTaskToggled(msg)

	case taskDeletedMsg:
		return m.handleTaskDeleted(msg)

	case themeChangedMsg:
		return m.handleThemeChanged(msg)

	case settingsChangedMsg:
		return m.handleSettingsChanged(msg)

	case errMsg:
		return m.handleError(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		return m, nil
	}
}

// View renders the model
func (m *Model) View() string {
	if m.terminalTooSmall {
		return m.terminalTooSmallView()
	}

	if m.helpMode {
		return m.helpView()
	}

	if m.confirmMode {
		title := m.confirmTaskID
		if t, ok := m.store.Get(m.confirmTaskID); ok {
			title = t.Title
		}
		view := fmt.Sprintf("Delete task %q and its history? (y/n)", title)
		if m.lastError != nil {
			view += "\n\nError: " + m.lastError.Error()
		}
		return view
	}

	dims := CalculatePaneDimensions(m.width, m.height)

	var body string
	switch m.activeTab {
	case TabCalendar:
		m.calendarView.SetSelected(m.selectedDate)
		body = m.theme.Border.Width(dims.ContentWidth - BorderWidth).Render(m.calendarView.View())
	case TabStatistics:
		m.statsView.SetWidth(dims.ContentWidth)
		body = m.statsView.View()
	default:
		body = m.renderDashboard(dims)
	}
	body = lipgloss.NewStyle().Height(dims.ContentHeight).MaxHeight(dims.ContentHeight).Render(body)

	m.refreshStatusBar()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.textEntryBar.View(),
		m.help.ShortHelpView(m.keys.ShortHelp()),
		m.statusBar.View(),
	)
}

// renderHeader draws the app title and the tab strip
func (m *Model) renderHeader() string {
	tabs := make([]string, 0, TabCount)
	for t := Tab(0); t < TabCount; t++ {
		style := m.theme.Tab
		if t == m.activeTab {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", t+1, tabName(t))))
	}

	title := m.theme.Title.Render("Daily Streak Tracker")
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderDashboard draws the task list, and the selected task's calendar
// beside it when one is open
func (m *Model) renderDashboard(dims PaneDimensions) string {
	if m.selectedTaskID == "" {
		m.taskList.SetSize(dims.ContentWidth-BorderWidth-2, dims.ContentHeight-BorderHeight)
		return m.theme.Border.Width(dims.ContentWidth - BorderWidth).Render(m.taskList.View())
	}

	m.taskList.SetSize(dims.ListWidth-BorderWidth-2, dims.ContentHeight-BorderHeight)
	list := m.theme.Border.Width(dims.ListWidth - BorderWidth).Render(m.taskList.View())
	detail := m.theme.Border.Width(dims.DetailWidth - BorderWidth).Render(m.renderDetailPane())
	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

// renderDetailPane shows the selected task's month and statistics
func (m *Model) renderDetailPane() string {
	t, ok := m.store.Get(m.selectedTaskID)
	if !ok {
		return ""
	}

	m.detailView.SetTitle(t.Title)
	m.detailView.SetGrid(task.TaskMonth(t, m.viewYear, m.viewMonth, m.store.Today(), m.settings.WeekStart))
	m.detailView.SetSelected(m.selectedDate)

	s := task.ComputeStats(t)
	var b strings.Builder
	b.WriteString(m.detailView.View())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total Days: %d  Rate: %s\n", s.TotalDays, s.CompletionRateFormatted())
	fmt.Fprintf(&b, "Longest: %d  Current: %d", s.LongestStreak, s.CurrentStreak)
	return b.String()
}

func (m *Model) refreshStatusBar() {
	m.statusBar.SetWidth(m.width)
	m.statusBar.SetDate(m.selectedDate, task.DescribeDate(m.selectedDate, m.store.Today()))
	m.statusBar.SetTotalStreaks(task.Summarize(m.tasks).TotalStreaks)
	switch {
	case m.lastError != nil:
		m.statusBar.SetMessage(m.lastError.Error(), true)
	default:
		m.statusBar.SetMessage("", false)
	}
}

// setTasks stores a fresh snapshot and pushes it to every view
func (m *Model) setTasks(tasks []task.Task) {
	m.tasks = tasks
	m.taskList.UpdateTasks(tasks, m.selectedDate)
	m.statsView.SetTasks(tasks)
	m.refreshCalendar()

	if m.selectedTaskID != "" {
		if _, ok := m.store.Get(m.selectedTaskID); !ok {
			m.selectedTaskID = ""
		}
	}
	m.taskList.SetDetailTask(m.selectedTaskID)
}

// refreshCalendar rebuilds the calendar tab's month grid
func (m *Model) refreshCalendar() {
	grid := task.Month(m.tasks, m.viewYear, m.viewMonth, m.store.Today(), m.settings.WeekStart)
	m.calendarView.SetGrid(grid)
	m.calendarView.SetSelected(m.selectedDate)
}

func (m *Model) applyTheme(theme components.Theme) {
	m.theme = theme
	m.taskList.SetTheme(theme)
	m.detailView.SetTheme(theme)
	m.calendarView.SetTheme(theme)
	m.statsView.SetTheme(theme)
	m.statusBar.SetTheme(theme)
}

func (m *Model) helpView() string {
	m.help.ShowAll = true
	defer func() { m.help.ShowAll = false }()

	return "Help - Key Bindings:\n\n" +
		m.help.View(m.keys) +
		"\n\nCalendar tab: h/l move a day, j/k move a week, [ ] change month, enter selects the date.\n" +
		"Dates after today cannot be selected.\n\nPress ? to exit help."
}

func (m *Model) terminalTooSmallView() string {
	title := "Terminal Too Small"
	currentSize := fmt.Sprintf("Current: %dx%d", m.width, m.height)
	requiredSize := fmt.Sprintf("Required: %dx%d or larger", MinTerminalWidth, MinTerminalHeight)

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Align(lipgloss.Center, lipgloss.Center)

	content := fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\nResize your terminal to continue.",
		title,
		currentSize,
		requiredSize,
	)

	return style.Render(content)
}
