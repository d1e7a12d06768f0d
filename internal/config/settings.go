package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// StreakMode selects how a task's cached streak is maintained on toggle.
type StreakMode string

const (
	// StreakIncremental adjusts the cached streak by one step per toggle.
	StreakIncremental StreakMode = "incremental"
	// StreakRecompute rebuilds the trailing run from the full history on every toggle.
	StreakRecompute StreakMode = "recompute"
)

// WeekStart selects the first column of calendar grids.
type WeekStart string

const (
	WeekStartSunday WeekStart = "sunday"
	WeekStartMonday WeekStart = "monday"
)

// Settings is the user-editable configuration stored in config.toml.
type Settings struct {
	LogLevel   string     `toml:"log_level"`
	LogFormat  string     `toml:"log_format"`
	LogFile    string     `toml:"log_file"`
	StreakMode StreakMode `toml:"streak_mode"`
	WeekStart  WeekStart  `toml:"week_start"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:   "INFO",
		LogFormat:  "text",
		StreakMode: StreakIncremental,
		WeekStart:  WeekStartSunday,
	}
}

// LoadSettings reads config.toml from the data directory.
// A missing file yields the defaults; LOG_LEVEL and LOG_FORMAT override the file.
func LoadSettings() (Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultSettings(), err
	}
	return LoadSettingsFile(path)
}

// LoadSettingsFile reads settings from an explicit path.
func LoadSettingsFile(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return s, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &s); err != nil {
			return DefaultSettings(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		s.LogLevel = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		s.LogFormat = format
	}

	s.normalize()
	return s, nil
}

// SaveSettingsFile writes settings to path in TOML form.
func SaveSettingsFile(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (s *Settings) normalize() {
	def := DefaultSettings()

	switch StreakMode(strings.ToLower(string(s.StreakMode))) {
	case StreakRecompute:
		s.StreakMode = StreakRecompute
	case StreakIncremental:
		s.StreakMode = StreakIncremental
	default:
		s.StreakMode = def.StreakMode
	}

	switch WeekStart(strings.ToLower(string(s.WeekStart))) {
	case WeekStartMonday:
		s.WeekStart = WeekStartMonday
	case WeekStartSunday:
		s.WeekStart = WeekStartSunday
	default:
		s.WeekStart = def.WeekStart
	}

	if s.LogLevel == "" {
		s.LogLevel = def.LogLevel
	}
	s.LogFormat = strings.ToLower(s.LogFormat)
	if s.LogFormat != "json" {
		s.LogFormat = "text"
	}
}
