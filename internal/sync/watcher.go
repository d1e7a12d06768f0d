package sync

import (
	"fmt"
	"log/slog"
	"path/filepath"
	stdsync "sync"
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// SettingsChangedEvent carries freshly reloaded settings
type SettingsChangedEvent struct {
	Path     string
	Settings config.Settings
}

// Watcher watches the settings file and reloads it on change.
// Editors often replace files rather than write them, so the parent
// directory is watched and events are filtered by name.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *slog.Logger
	changes chan SettingsChangedEvent
	done    chan struct{}

	mu            stdsync.Mutex
	debounceTimer *time.Timer
	stopOnce      stdsync.Once
}

// NewWatcher creates a watcher for the settings file at path
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		watcher: fsWatcher,
		path:    filepath.Clean(path),
		logger:  logger,
		changes: make(chan SettingsChangedEvent, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher; calling it more than once is safe
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		w.watcher.Close()
	})
}

// Changes returns the channel for settings change notifications
func (w *Watcher) Changes() <-chan SettingsChangedEvent {
	return w.changes
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.mu.Lock()
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// reload re-reads the settings file after the debounce window
func (w *Watcher) reload() {
	settings, err := config.LoadSettingsFile(w.path)
	if err != nil {
		w.logger.Warn("failed to reload settings", "path", w.path, "error", err)
		return
	}

	w.logger.Debug("settings reloaded", "path", w.path, "streak_mode", settings.StreakMode, "week_start", settings.WeekStart)

	select {
	case w.changes <- SettingsChangedEvent{Path: w.path, Settings: settings}:
	case <-w.done:
	default:
		w.logger.Warn("settings change dropped; listener is not keeping up")
	}
}
