package cli

import (
	"fmt"

	"github.com/MikeBiancalana/streak/internal/logger"
	"github.com/MikeBiancalana/streak/internal/task"
	"github.com/spf13/cobra"
)

var (
	exportOutFlag string
	importMerge   bool
)

// exportCmd writes every habit to a YAML document
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export habits to a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := task.WriteExport(store.Tasks(), store.DarkMode(), store.Today())
		if err != nil {
			return err
		}

		if exportOutFlag == "-" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}

		path := exportOutFlag
		if path == "" {
			path, err = fileStore.ExportPath(store.Today())
			if err != nil {
				return fmt.Errorf("failed to resolve export path: %w", err)
			}
		}
		if err := fileStore.WriteFile(path, data); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d task(s) to %s\n", store.Len(), path)
		return nil
	},
}

// importCmd loads habits from a YAML export
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import habits from a YAML export (default: newest export)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			exports, err := fileStore.ListExports()
			if err != nil {
				return err
			}
			if len(exports) == 0 {
				return fmt.Errorf("no exports found; pass a file to import")
			}
			path = exports[0].Path
		}

		data, _, err := fileStore.ReadFile(path)
		if err != nil {
			return err
		}

		doc, err := task.ParseExport(data)
		if err != nil {
			return err
		}

		if !importMerge && store.Len() > 0 {
			backup, err := backupBeforeImport()
			if err != nil {
				return fmt.Errorf("failed to back up before import: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  Backup: %s\n", backup)
		}

		added, err := store.Import(task.Pointers(doc.Tasks), importMerge)
		if err != nil {
			return fmt.Errorf("failed to import tasks: %w", err)
		}
		if !importMerge {
			if err := store.SetDarkMode(doc.DarkMode); err != nil {
				return fmt.Errorf("failed to save theme: %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d task(s) from %s\n", added, path)
		return nil
	},
}

// backupBeforeImport snapshots the current habits so a replacing import
// can be undone with another import
func backupBeforeImport() (string, error) {
	data, err := task.WriteExport(store.Tasks(), store.DarkMode(), store.Today())
	if err != nil {
		return "", err
	}
	path, err := fileStore.BackupPath(store.Today(), now())
	if err != nil {
		return "", err
	}
	if err := fileStore.WriteFile(path, data); err != nil {
		return "", err
	}
	logger.Info("backup written before import", "path", path, "tasks", store.Len())
	return path, nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutFlag, "out", "o", "", "Output file (default ~/.streak/exports/streak-<date>.yaml, - for stdout)")
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Keep existing habits and add only new ids")
}
