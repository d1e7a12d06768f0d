package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MikeBiancalana/streak/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

// configCmd prints the effective settings and where they are read from
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s", path)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			fmt.Fprint(out, " (not created, using defaults)")
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  log_level:   %s\n", settings.LogLevel)
		fmt.Fprintf(out, "  log_format:  %s\n", settings.LogFormat)
		if settings.LogFile != "" {
			fmt.Fprintf(out, "  log_file:    %s\n", settings.LogFile)
		}
		fmt.Fprintf(out, "  streak_mode: %s\n", settings.StreakMode)
		fmt.Fprintf(out, "  week_start:  %s\n", settings.WeekStart)
		return nil
	},
}

// configInitCmd writes a config.toml with the default settings
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}

		if err := config.SaveSettingsFile(path, config.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}
