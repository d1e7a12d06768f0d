package cli

import (
	"fmt"
	"strings"

	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var addDescriptionFlag string

// addCmd creates a new task
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a habit to track",
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		description := addDescriptionFlag

		if len(args) == 0 {
			var err error
			title, description, err = runInteractiveAddForm()
			if err != nil {
				return err
			}
		}

		t, err := store.AddTask(title, description)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ Added task: %s\n", t.ShortID())
		fmt.Fprintf(out, "  Title: %s\n", t.Title)
		if t.Description != "" {
			fmt.Fprintf(out, "  Description: %s\n", strings.ReplaceAll(t.Description, "\n", "\n    "))
		}
		return nil
	},
}

// runInteractiveAddForm prompts for a title and optional description
func runInteractiveAddForm() (string, string, error) {
	var title, description string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Placeholder("Add a new task...").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return task.ErrEmptyTitle
					}
					return nil
				}),
			huh.NewText().
				Title("Description (optional)").
				Placeholder("Add a description (optional)...").
				Value(&description),
		),
	)

	if err := form.Run(); err != nil {
		return "", "", fmt.Errorf("form cancelled: %w", err)
	}
	return title, description, nil
}

func init() {
	addCmd.Flags().StringVarP(&addDescriptionFlag, "description", "d", "", "Optional description")
}
