package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// themeCmd shows or changes the persisted color scheme
var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or set the color scheme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dark := store.DarkMode()
		if len(args) == 1 {
			switch args[0] {
			case "dark":
				dark = true
			case "light":
				dark = false
			case "toggle":
				dark = !dark
			default:
				return fmt.Errorf("unknown theme %q (want dark, light or toggle)", args[0])
			}
			if err := store.SetDarkMode(dark); err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), themeName(dark))
		return nil
	},
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
