package task

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/MikeBiancalana/streak/internal/perf"
)

var (
	// ErrEmptyTitle is returned when adding a task whose title is blank
	ErrEmptyTitle = errors.New("title is required")
	// ErrNotFound is returned by lookups for ids that match no task
	ErrNotFound = errors.New("task not found")
	// ErrAmbiguousID is returned when an id prefix matches several tasks
	ErrAmbiguousID = errors.New("ambiguous task id")
)

// slowSaveThreshold marks persistence calls worth a warning
const slowSaveThreshold = 100 * time.Millisecond

// Clock supplies the reference "now" used for today's date
type Clock func() time.Time

// Store owns the task collection. Every mutation is persisted through the
// repository before it returns.
type Store struct {
	mu       sync.Mutex
	repo     *Repository
	tasks    []*Task
	darkMode bool
	mode     config.StreakMode
	now      Clock
	logger   *slog.Logger
	saves    *perf.Recorder
}

// Option configures a Store
type Option func(*Store)

// WithStreakMode selects incremental or recompute streak maintenance
func WithStreakMode(mode config.StreakMode) Option {
	return func(s *Store) { s.mode = mode }
}

// WithClock injects the reference clock
func WithClock(now Clock) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the store logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// NewStore creates an empty store; call Load to read persisted state
func NewStore(repo *Repository, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		tasks: make([]*Task, 0),
		mode:  config.StreakIncremental,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = DefaultLogger(s.logger)
	s.saves = perf.NewRecorder("task.save", s.logger, slowSaveThreshold)
	return s
}

// Load replaces the in-memory state with what the repository holds.
// It never fails: unreadable state degrades to an empty collection.
func (s *Store) Load() {
	tasks := s.repo.LoadTasks()
	dark := s.repo.LoadDarkMode()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.darkMode = dark
	s.logger.Info("store loaded", "tasks", len(tasks), "darkMode", dark)
}

// Today returns the reference date from the injected clock
func (s *Store) Today() string {
	return FormatDate(s.now())
}

// StreakMode returns the active streak maintenance mode
func (s *Store) StreakMode() config.StreakMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetStreakMode changes the mode used by subsequent toggles
func (s *Store) SetStreakMode(mode config.StreakMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// Tasks returns a snapshot of the collection in insertion order
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of tasks
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Get returns a copy of the task with the given id
func (s *Store) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.find(id); t != nil {
		return t.Clone(), true
	}
	return Task{}, false
}

// Find resolves a full id or a unique id prefix
func (s *Store) Find(ref string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.find(ref); t != nil {
		return t.Clone(), nil
	}

	var match *Task
	if ref != "" {
		for _, t := range s.tasks {
			if !strings.HasPrefix(t.ID, ref) {
				continue
			}
			if match != nil {
				return Task{}, fmt.Errorf("%w: %s", ErrAmbiguousID, ref)
			}
			match = t
		}
	}
	if match == nil {
		return Task{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return match.Clone(), nil
}

// AddTask appends a new task and persists the collection
func (s *Store) AddTask(title, description string) (Task, error) {
	if strings.TrimSpace(title) == "" {
		return Task{}, ErrEmptyTitle
	}
	t := NewTask(title, description)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, t)
	if err := s.save(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return Task{}, err
	}

	s.logger.Info("task added", "id", t.ID, "title", t.Title)
	return t.Clone(), nil
}

// DeleteTask removes the task with id. Unknown ids are a no-op and
// report false; callers clear any selection pointing at a removed task.
func (s *Store) DeleteTask(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		s.logger.Debug("delete of unknown task ignored", "id", id)
		return false, nil
	}

	previous := s.tasks
	s.tasks = append(s.tasks[:idx:idx], s.tasks[idx+1:]...)
	if err := s.save(); err != nil {
		s.tasks = previous
		return false, err
	}

	s.logger.Info("task deleted", "id", id)
	return true, nil
}

// ToggleCompletion flips the task's completion on date and persists.
// It returns true when the date is now marked done. Unknown ids are a no-op.
func (s *Store) ToggleCompletion(id, date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	if t == nil {
		s.logger.Debug("toggle of unknown task ignored", "id", id)
		return false, nil
	}

	before := t.Clone()
	marked, err := Toggle(t, date, s.mode)
	if err != nil {
		return false, err
	}
	if err := s.save(); err != nil {
		*t = before
		return false, err
	}

	s.logger.Debug("task toggled",
		"id", id,
		"date", date,
		"marked", marked,
		"streak", t.Streak,
		"mode", s.mode,
	)
	return marked, nil
}

// IsCompletedOn reports whether task id was completed on date
func (s *Store) IsCompletedOn(id, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(id)
	return t != nil && t.IsCompletedOn(date)
}

// Import replaces the collection with tasks, or with merge set, appends
// the tasks whose ids are not already present. It returns how many were added.
func (s *Store) Import(tasks []*Task, merge bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.tasks
	next := make([]*Task, 0, len(tasks)+len(s.tasks))
	if merge {
		next = append(next, s.tasks...)
	}

	added := 0
	seen := make(map[string]bool, len(next))
	for _, t := range next {
		seen[t.ID] = true
	}
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		c := t.Clone()
		next = append(next, &c)
		added++
	}

	s.tasks = next
	if err := s.save(); err != nil {
		s.tasks = previous
		return 0, err
	}
	s.logger.Info("tasks imported", "added", added, "merge", merge)
	return added, nil
}

// DarkMode returns the persisted theme preference
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

// SetDarkMode persists the theme preference
func (s *Store) SetDarkMode(dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveDarkMode(dark); err != nil {
		return err
	}
	s.darkMode = dark
	return nil
}

// SaveStats reports timing for persistence calls made so far
func (s *Store) SaveStats() perf.Stats {
	return s.saves.Stats()
}

// save must be called with mu held
func (s *Store) save() error {
	start := time.Now()
	err := s.repo.SaveTasks(s.tasks)
	s.saves.Record(time.Since(start))
	if err != nil {
		s.logger.Error("failed to persist tasks", "error", err)
	}
	return err
}

func (s *Store) find(id string) *Task {
	if idx := s.index(id); idx >= 0 {
		return s.tasks[idx]
	}
	return nil
}

func (s *Store) index(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
