package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MikeBiancalana/streak/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how log records are written
type Config struct {
	Level   string
	Format  string
	File    string // empty means stderr, unless TUIMode is set
	TUIMode bool   // the TUI owns the terminal, so logs must go to a file
}

var (
	mu        sync.RWMutex
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
	tuiMode   bool
	rotator   *lumberjack.Logger

	errOut io.Writer = os.Stderr
)

func init() {
	Initialize()
}

// Initialize sets up the logger from LOG_LEVEL, LOG_FORMAT and
// STREAK_LOG_FILE. A log file that cannot be opened is reported on
// stderr and logging falls back to stderr.
func Initialize() {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if v := os.Getenv("STREAK_DEBUG"); v == "1" || v == "true" {
			levelStr = "DEBUG"
		}
	}
	cfg := Config{
		Level:  levelStr,
		Format: os.Getenv("LOG_FORMAT"),
		File:   os.Getenv("STREAK_LOG_FILE"),
	}
	if err := InitializeWithConfig(cfg); err != nil {
		fmt.Fprintf(errOut, "streak: logging to stderr: %v\n", err)
		cfg.File = ""
		_ = InitializeWithConfig(cfg)
	}
}

// InitializeWithConfig (re)initializes the package logger.
// It is safe to call more than once; the previous log file is closed.
func InitializeWithConfig(cfg Config) error {
	level := parseLevel(cfg.Level)

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "text"
	}

	file := cfg.File
	if file == "" && cfg.TUIMode {
		logDir, err := config.LogDir()
		if err != nil {
			return fmt.Errorf("TUI mode requires file-based logging: %w", err)
		}
		file = filepath.Join(logDir, config.AppName+".log")
	}

	var out io.Writer = os.Stderr
	var newRotator *lumberjack.Logger
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			if cfg.TUIMode {
				return fmt.Errorf("TUI mode requires file-based logging: %w", err)
			}
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		newRotator = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out = newRotator
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	mu.Lock()
	defer mu.Unlock()

	if rotator != nil {
		_ = rotator.Close()
	}
	rotator = newRotator
	logger = slog.New(handler)
	logLevel = level
	logFormat = format
	logFile = file
	tuiMode = cfg.TUIMode

	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotator == nil {
		return nil
	}
	err := rotator.Close()
	rotator = nil
	return err
}

func GetLogger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func GetLevel() slog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return logLevel
}

func GetFormat() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFormat
}

func GetLogFile() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFile
}

func IsTUIMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return tuiMode
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
