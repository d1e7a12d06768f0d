package task

import (
	"slices"
	"strings"

	"github.com/rs/xid"
)

// Task is a habit tracked by the days it was completed on
type Task struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	CompletedDates []string `json:"completedDates" yaml:"completedDates"` // YYYY-MM-DD, ascending, no duplicates
	Streak         int      `json:"streak" yaml:"streak"`
	LastCompleted  *string  `json:"lastCompleted" yaml:"lastCompleted"`
}

// NewTask creates a task with no completions
func NewTask(title, description string) *Task {
	return &Task{
		ID:             xid.New().String(),
		Title:          strings.TrimSpace(title),
		Description:    strings.TrimSpace(description),
		CompletedDates: make([]string, 0),
		Streak:         0,
		LastCompleted:  nil,
	}
}

// IsCompletedOn reports whether date is in the task's completions
func (t *Task) IsCompletedOn(date string) bool {
	_, found := slices.BinarySearch(t.CompletedDates, date)
	return found
}

// LastCompletedString returns lastCompleted or "" when unset
func (t *Task) LastCompletedString() string {
	if t.LastCompleted == nil {
		return ""
	}
	return *t.LastCompleted
}

// Clone returns a deep copy
func (t *Task) Clone() Task {
	c := *t
	c.CompletedDates = slices.Clone(t.CompletedDates)
	if c.CompletedDates == nil {
		c.CompletedDates = make([]string, 0)
	}
	if t.LastCompleted != nil {
		last := *t.LastCompleted
		c.LastCompleted = &last
	}
	return c
}

// ShortID returns the first 8 characters of the id for display
func (t *Task) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}

// addDate inserts date keeping CompletedDates sorted; returns false if already present
func (t *Task) addDate(date string) bool {
	i, found := slices.BinarySearch(t.CompletedDates, date)
	if found {
		return false
	}
	t.CompletedDates = slices.Insert(t.CompletedDates, i, date)
	return true
}

// removeDate deletes date from CompletedDates; returns false if absent
func (t *Task) removeDate(date string) bool {
	i, found := slices.BinarySearch(t.CompletedDates, date)
	if !found {
		return false
	}
	t.CompletedDates = slices.Delete(t.CompletedDates, i, i+1)
	return true
}
