package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Coordinator.Load(context.Background()); err != nil {
				return err
			}
			data, err := app.Coordinator.ExportData()
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(data)
				return nil
			}
			if err := os.WriteFile(out, []byte(data+"\n"), 0644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Printf("Exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import tasks from a JSON export, replacing the current board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import: %w", err)
			}
			if err := app.Coordinator.ImportData(context.Background(), string(raw)); err != nil {
				return err
			}
			fmt.Printf("Imported %d tasks\n", len(app.Store.State().Tasks))
			return nil
		},
	}
}
