package cli

import (
	"context"
	"fmt"

	"github.com/okonkwoa/ataraxia/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import habits and stress entries from a JSON file",
		Long:  "Import habits, completion history, and stress entries from a JSON file.\nHabits that match one already tracked are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Import.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d habits, %d completions, %d stress entries.\n",
				summary.Habits, summary.Completions, summary.StressEntries)
			for _, name := range summary.SkippedHabits {
				fmt.Println(formatter.Dim(fmt.Sprintf("Skipped %q (already tracked).", name)))
			}
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export habits and stress entries to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Import.ExportFile(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Exported wellness data to %s.\n", args[0])
			return nil
		},
	}
}
