package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger restores a stderr logger once the test finishes
func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_ = Close()
		_ = InitializeWithConfig(Config{})
	})
}

// blockedPath returns a path whose parent is a regular file, so no
// directory can be created under it
func blockedPath(t *testing.T, rest ...string) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	return filepath.Join(append([]string{blocker}, rest...)...)
}

func TestInitializeWithConfig_TUIMode(t *testing.T) {
	resetLogger(t)
	dataDir := t.TempDir()
	t.Setenv("STREAK_DATA_DIR", dataDir)

	require.NoError(t, InitializeWithConfig(Config{Level: "DEBUG", TUIMode: true}))

	assert.Equal(t, slog.LevelDebug, GetLevel())
	assert.True(t, IsTUIMode())
	assert.Equal(t, filepath.Join(dataDir, "logs", "streak.log"), GetLogFile())
	assert.DirExists(t, filepath.Join(dataDir, "logs"))
}

func TestInitializeWithConfig_TUIModeUncreatableLogDir(t *testing.T) {
	resetLogger(t)
	t.Setenv("STREAK_DATA_DIR", blockedPath(t, "data"))

	err := InitializeWithConfig(Config{TUIMode: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI mode requires file-based logging")

	err = InitializeWithConfig(Config{File: blockedPath(t, "logs", "streak.log"), TUIMode: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI mode requires file-based logging")
}

func TestInitializeWithConfig_Stderr(t *testing.T) {
	resetLogger(t)

	require.NoError(t, InitializeWithConfig(Config{Level: "warning", Format: "JSON"}))

	assert.Equal(t, slog.LevelWarn, GetLevel())
	assert.Equal(t, "json", GetFormat())
	assert.Empty(t, GetLogFile())
	assert.False(t, IsTUIMode())
}

func TestInitializeWithConfig_RotatingFile(t *testing.T) {
	resetLogger(t)
	file := filepath.Join(t.TempDir(), "nested", "streak.log")

	require.NoError(t, InitializeWithConfig(Config{Level: "INFO", Format: "json", File: file}))

	mu.RLock()
	r := rotator
	mu.RUnlock()
	require.NotNil(t, r)
	assert.Equal(t, file, r.Filename)
	assert.Equal(t, 10, r.MaxSize)
	assert.Equal(t, 3, r.MaxBackups)
	assert.Equal(t, 28, r.MaxAge)

	Info("task toggled", "streak", 3)
	Debug("filtered out")
	require.NoError(t, Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"task toggled"`)
	assert.Contains(t, string(data), `"streak":3`)
	assert.NotContains(t, string(data), "filtered out")
}

func TestInitializeWithConfig_ReplacesPreviousFile(t *testing.T) {
	resetLogger(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, InitializeWithConfig(Config{File: first}))
	Info("one")
	require.NoError(t, InitializeWithConfig(Config{File: second}))
	Info("two")
	require.NoError(t, Close())

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "one")
	assert.NotContains(t, string(data), "two")

	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "two")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestInitialize_Env(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		streakDebug string
		want        slog.Level
	}{
		{"defaults to info", "", "", slog.LevelInfo},
		{"STREAK_DEBUG=1", "", "1", slog.LevelDebug},
		{"STREAK_DEBUG=true", "", "true", slog.LevelDebug},
		{"STREAK_DEBUG other value", "", "yes", slog.LevelInfo},
		{"LOG_LEVEL wins over STREAK_DEBUG", "ERROR", "1", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLogger(t)
			t.Setenv("LOG_LEVEL", tt.logLevel)
			t.Setenv("STREAK_DEBUG", tt.streakDebug)
			t.Setenv("LOG_FORMAT", "json")
			t.Setenv("STREAK_LOG_FILE", "")

			Initialize()

			assert.Equal(t, tt.want, GetLevel())
			assert.Equal(t, "json", GetFormat())
		})
	}
}

func TestInitialize_LogFileEnv(t *testing.T) {
	resetLogger(t)
	file := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("STREAK_LOG_FILE", file)
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STREAK_DEBUG", "")

	Initialize()

	assert.Equal(t, file, GetLogFile())
}

func TestInitialize_UnusableLogFileFallsBackToStderr(t *testing.T) {
	resetLogger(t)
	var stderr bytes.Buffer
	previous := errOut
	errOut = &stderr
	t.Cleanup(func() { errOut = previous })

	t.Setenv("STREAK_LOG_FILE", blockedPath(t, "logs", "streak.log"))
	t.Setenv("LOG_LEVEL", "WARN")

	Initialize()

	assert.Contains(t, stderr.String(), "streak: logging to stderr: failed to create log directory")
	assert.Empty(t, GetLogFile())
	assert.Equal(t, slog.LevelWarn, GetLevel())
	require.NotNil(t, GetLogger())
}

func TestClose_Idempotent(t *testing.T) {
	resetLogger(t)
	file := filepath.Join(t.TempDir(), "close.log")
	require.NoError(t, InitializeWithConfig(Config{File: file}))

	Info("before close")
	require.NoError(t, Close())
	require.NoError(t, Close())

	assert.FileExists(t, file)

	// without a file there is nothing to close
	require.NoError(t, InitializeWithConfig(Config{}))
	assert.NoError(t, Close())
}

func TestConcurrentLoggingDuringReinitialize(t *testing.T) {
	resetLogger(t)
	dir := t.TempDir()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			file := filepath.Join(dir, "concurrent.log")
			if i%2 == 0 {
				file = ""
			}
			assert.NoError(t, InitializeWithConfig(Config{File: file}))
		}(i)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				Info("concurrent", "worker", i, "n", j)
				_ = GetLevel()
			}
		}(i)
	}
	wg.Wait()

	require.NotNil(t, GetLogger())
	assert.Equal(t, "text", GetFormat())
}
