package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/MikeBiancalana/streak/internal/storage"
)

// Storage keys
const (
	TasksKey    = "tasks"
	DarkModeKey = "darkMode"
)

// Backend is the key/value persistence the repository writes through.
// *storage.Database satisfies it.
type Backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Repository encodes the task collection and theme flag into a Backend
type Repository struct {
	backend Backend
	logger  *slog.Logger
}

// NewRepository creates a new task repository
func NewRepository(backend Backend, logger *slog.Logger) *Repository {
	return &Repository{
		backend: backend,
		logger:  DefaultLogger(logger),
	}
}

// LoadTasks reads the persisted collection. Missing or unreadable state
// is not an error: it yields an empty collection.
func (r *Repository) LoadTasks() []*Task {
	raw, err := r.backend.Get(TasksKey)
	if errors.Is(err, storage.ErrNotFound) {
		r.logger.Debug("LoadTasks", "result", "no saved tasks")
		return make([]*Task, 0)
	}
	if err != nil {
		r.logger.Warn("LoadTasks", "error", err, "fallback", "empty")
		return make([]*Task, 0)
	}

	tasks, err := DecodeTasks([]byte(raw))
	if err != nil {
		r.logger.Warn("LoadTasks", "error", err, "fallback", "empty")
		return make([]*Task, 0)
	}

	r.logger.Debug("LoadTasks", "count", len(tasks))
	return tasks
}

// SaveTasks replaces the persisted collection
func (r *Repository) SaveTasks(tasks []*Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	if err := r.backend.Set(TasksKey, string(data)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// LoadDarkMode reads the theme flag; anything unreadable means light mode
func (r *Repository) LoadDarkMode() bool {
	raw, err := r.backend.Get(DarkModeKey)
	if err != nil {
		return false
	}
	dark, err := strconv.ParseBool(raw)
	if err != nil {
		r.logger.Warn("LoadDarkMode", "value", raw, "error", err)
		return false
	}
	return dark
}

// SaveDarkMode persists the theme flag
func (r *Repository) SaveDarkMode(dark bool) error {
	if err := r.backend.Set(DarkModeKey, strconv.FormatBool(dark)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// DecodeTasks parses a JSON task array. Tasks without an id or title make
// the whole document invalid; completion lists are sorted and deduplicated.
func DecodeTasks(data []byte) ([]*Task, error) {
	var tasks []*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	if tasks == nil {
		return make([]*Task, 0), nil
	}
	for i, t := range tasks {
		if t == nil || t.ID == "" || t.Title == "" {
			return nil, fmt.Errorf("failed to decode tasks: entry %d is incomplete", i)
		}
		normalize(t)
	}
	return tasks, nil
}

func normalize(t *Task) {
	if t.CompletedDates == nil {
		t.CompletedDates = make([]string, 0)
	}
	slices.Sort(t.CompletedDates)
	t.CompletedDates = slices.Compact(t.CompletedDates)
	if t.Streak < 0 {
		t.Streak = 0
	}
}
