package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/okonkwoa/ataraxia/internal/cli/formatter"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/spf13/cobra"
)

func newStressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Record and review stress levels",
	}
	cmd.AddCommand(newStressLogCmd(app))
	cmd.AddCommand(newStressHistoryCmd(app))
	return cmd
}

func newStressLogCmd(app *App) *cobra.Command {
	var level string
	var note string
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a stress entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := domain.StressLevel(strings.ToLower(level))
			if !domain.ValidStressLevels[lvl] {
				return fmt.Errorf("unknown stress level %q (expected %s)", level, joinLevels())
			}
			entry, err := app.Stress.Record(context.Background(), lvl, note)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStressRecorded(entry))
			return nil
		},
	}
	addLevelFlag(cmd.Flags(), &level)
	cmd.Flags().StringVar(&note, "note", "", "Optional note attached to the entry")
	_ = cmd.MarkFlagRequired("level")
	return cmd
}

func newStressHistoryCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent stress entries, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Stress.History(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStressHistory(entries))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 14, "Maximum number of entries (0 for all)")
	return cmd
}
