package components

import (
	"fmt"
	"strings"

	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

const (
	checkedIcon   = "●"
	uncheckedIcon = "○"
	streakIcon    = "🔥"
)

// TaskItem is one habit row. Implements list.Item.
type TaskItem struct {
	task task.Task
	done bool
}

// FilterValue implements list.Item interface
func (t TaskItem) FilterValue() string {
	return t.task.Title
}

// TaskList displays habits with their completion state on one date
type TaskList struct {
	list         list.Model
	date         string
	expandedMap  map[string]bool
	detailTaskID string
	theme        Theme
	width        int
}

// NewTaskList creates a new TaskList component
func NewTaskList(tasks []task.Task, date string) *TaskList {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetFilteringEnabled(false)

	tl := &TaskList{
		list:        l,
		expandedMap: make(map[string]bool),
		theme:       NewTheme(false),
	}
	tl.UpdateTasks(tasks, date)
	return tl
}

// View renders the task list
func (tl *TaskList) View() string {
	items := tl.list.Items()
	if len(items) == 0 {
		return tl.theme.Muted.Render("No tasks added yet. Add your first task to start building streaks!")
	}

	var sb strings.Builder
	for i, item := range items {
		taskItem, ok := item.(TaskItem)
		if !ok {
			continue
		}

		line := tl.renderTaskItem(taskItem)
		if i == tl.list.Index() {
			line = tl.theme.Selected.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		if tl.expandedMap[taskItem.task.ID] && taskItem.task.Description != "" {
			for _, descLine := range strings.Split(taskItem.task.Description, "\n") {
				sb.WriteString(tl.theme.Muted.Render("      " + descLine))
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

func (tl *TaskList) renderTaskItem(item TaskItem) string {
	t := item.task

	check := tl.theme.Muted.Render(uncheckedIcon)
	title := tl.theme.Text.Render(t.Title)
	if item.done {
		check = tl.theme.Done.Render(checkedIcon)
	}

	marker := " "
	if t.ID == tl.detailTaskID {
		marker = "▸"
	}

	streak := tl.theme.Streak.Render(fmt.Sprintf("%s %d", streakIcon, t.Streak))
	left := fmt.Sprintf("%s %s %s", marker, check, title)

	gap := tl.width - lipgloss.Width(left) - lipgloss.Width(streak)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + streak
}

// SetSize updates the dimensions of task list
func (tl *TaskList) SetSize(width, height int) {
	tl.width = width
	tl.list.SetSize(width, height)
}

// SetTheme switches the color scheme
func (tl *TaskList) SetTheme(theme Theme) {
	tl.theme = theme
}

// SetDetailTask marks the task whose detail pane is open
func (tl *TaskList) SetDetailTask(id string) {
	tl.detailTaskID = id
}

// SelectedTask returns the task under the cursor
func (tl *TaskList) SelectedTask() *task.Task {
	selected := tl.list.SelectedItem()
	if selected == nil {
		return nil
	}

	taskItem, ok := selected.(TaskItem)
	if !ok {
		return nil
	}

	t := taskItem.task
	return &t
}

// UpdateTasks replaces the rows, rendering completion state for date.
// The cursor stays on the same task when it still exists.
func (tl *TaskList) UpdateTasks(tasks []task.Task, date string) {
	var currentID string
	if t := tl.SelectedTask(); t != nil {
		currentID = t.ID
	}

	tl.date = date
	items := make([]list.Item, 0, len(tasks))
	cursor := tl.list.Index()
	for i := range tasks {
		t := tasks[i]
		items = append(items, TaskItem{task: t, done: t.IsCompletedOn(date)})
		if t.ID == currentID {
			cursor = i
		}
	}

	tl.list.SetItems(items)
	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	if cursor >= 0 {
		tl.list.Select(cursor)
	}
}

// Date returns the date the rows are rendered for
func (tl *TaskList) Date() string {
	return tl.date
}

// Len returns the number of rows
func (tl *TaskList) Len() int {
	return len(tl.list.Items())
}

// CursorUp moves the selection up
func (tl *TaskList) CursorUp() {
	tl.list.CursorUp()
}

// CursorDown moves the selection down
func (tl *TaskList) CursorDown() {
	tl.list.CursorDown()
}

// ToggleExpanded shows or hides a task's description
func (tl *TaskList) ToggleExpanded(taskID string) {
	if tl.expandedMap[taskID] {
		delete(tl.expandedMap, taskID)
	} else {
		tl.expandedMap[taskID] = true
	}
}

// IsExpanded returns whether a task's description is shown
func (tl *TaskList) IsExpanded(taskID string) bool {
	return tl.expandedMap[taskID]
}
