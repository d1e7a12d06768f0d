package sync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	watcher, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NotNil(t, watcher)
	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.changes)
	assert.Equal(t, path, watcher.path)

	watcher.Stop()
}

func TestWatcherStartStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	watcher, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, watcher.Start())

	watcher.Stop()
	watcher.Stop() // second stop must not panic
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)

	watcher, err := NewWatcher(path, nil)
	require.NoError(t, err)
	require.NoError(t, watcher.Start())
	defer watcher.Stop()

	// unrelated files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("week_start = \"monday\"\nstreak_mode = \"recompute\"\n"), 0644))

	select {
	case ev := <-watcher.Changes():
		assert.Equal(t, path, ev.Path)
		assert.Equal(t, config.WeekStartMonday, ev.Settings.WeekStart)
		assert.Equal(t, config.StreakRecompute, ev.Settings.StreakMode)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for settings change")
	}
}

func TestWatcherStartMissingDir(t *testing.T) {
	watcher, err := NewWatcher(filepath.Join(t.TempDir(), "missing", config.ConfigFileName), nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.Error(t, watcher.Start())
}
