package config

import (
	"os"
	"path/filepath"
)

const (
	AppName        = "streak"
	DbName         = "streak.db"
	ConfigFileName = "config.toml"
	ExportDirName  = "exports"
)

// DataDir returns the path to the streak data directory (~/.streak/)
// Creates the directory if it doesn't exist
// Can be overridden with STREAK_DATA_DIR environment variable (primarily for testing)
func DataDir() (string, error) {
	if dataDir := os.Getenv("STREAK_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// DatabasePath returns the path to the SQLite database (~/.streak/streak.db)
func DatabasePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, DbName), nil
}

// ConfigPath returns the path to the settings file (~/.streak/config.toml)
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, ConfigFileName), nil
}

// LogDir returns the path to the log directory (~/.streak/logs/)
// Creates the directory if it doesn't exist
func LogDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}

	return logDir, nil
}

// ExportDir returns the path to the export directory (~/.streak/exports/)
// Creates the directory if it doesn't exist
func ExportDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	exportDir := filepath.Join(dataDir, ExportDirName)
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return "", err
	}

	return exportDir, nil
}
