package cli

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/MikeBiancalana/streak/internal/logger"
	"github.com/MikeBiancalana/streak/internal/storage"
	"github.com/MikeBiancalana/streak/internal/sync"
	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/MikeBiancalana/streak/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=..."
var Version = "dev"

var (
	settings  config.Settings
	db        *storage.Database
	store     *task.Store
	fileStore *storage.FileStore

	// now is the reference clock; tests replace it
	now task.Clock = time.Now
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:           "streak",
	Short:         "Streak - daily habit tracker",
	Long:          `Track daily habits, build consecutive-day streaks, and review them on a calendar.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initStore(false)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI, with logs moved off the terminal
		if err := initLogger(true); err != nil {
			return err
		}
		return runTUI()
	},
}

func init() {
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(GetTaskCommands()...)
	RootCmd.AddCommand(calendarCmd)
	RootCmd.AddCommand(statsCmd)
	RootCmd.AddCommand(themeCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(versionCmd)
}

// initStore loads settings, configures logging, opens the database and
// loads the task store.
func initStore(tuiMode bool) error {
	var err error
	settings, err = config.LoadSettings()
	if err != nil {
		// fall back to defaults; a broken config file should not lock the user out
		logger.Warn("failed to load settings, using defaults", "error", err)
	}

	if err := initLogger(tuiMode); err != nil {
		return err
	}

	dbPath, err := config.DatabasePath()
	if err != nil {
		return fmt.Errorf("error getting database path: %w", err)
	}

	if err := closeStore(); err != nil {
		return err
	}
	db, err = storage.NewDatabase(dbPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}

	repo := task.NewRepository(db, logger.GetLogger())
	store = task.NewStore(repo,
		task.WithStreakMode(settings.StreakMode),
		task.WithClock(now),
		task.WithLogger(logger.GetLogger()),
	)
	store.Load()
	fileStore = storage.NewFileStore()

	return nil
}

func initLogger(tuiMode bool) error {
	return logger.InitializeWithConfig(logger.Config{
		Level:   settings.LogLevel,
		Format:  settings.LogFormat,
		File:    settings.LogFile,
		TUIMode: tuiMode,
	})
}

func closeStore() error {
	if db == nil {
		return nil
	}
	if store != nil {
		stats := store.SaveStats()
		logger.Debug("store closed",
			"saves", stats.Count,
			"avg_ms", stats.AvgDuration().Milliseconds(),
			"slow_saves", stats.SlowOps,
		)
	}
	err := db.Close()
	db = nil
	if err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}

func runTUI() error {
	model := tui.NewModel(store, settings)

	if path, err := config.ConfigPath(); err == nil {
		if w, err := sync.NewWatcher(path, logger.GetLogger()); err == nil {
			if err := w.Start(); err != nil {
				logger.Warn("config watcher disabled", "error", err)
			} else {
				defer w.Stop()
				model.SetWatcher(w)
			}
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Execute runs the root command
func Execute() error {
	defer logger.Close()
	return RootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "streak %s\n", Version)
	},
}
