package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/okonkwoa/ataraxia/internal/cli/formatter"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/repository"
	"github.com/spf13/cobra"
)

func newHabitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage tracked habits",
	}
	cmd.AddCommand(newHabitListCmd(app))
	cmd.AddCommand(newHabitAddCmd(app))
	cmd.AddCommand(newHabitRemoveCmd(app))
	cmd.AddCommand(newHabitDoneCmd(app))
	return cmd
}

func newHabitListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := app.Habits.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHabitList(habits))
			return nil
		},
	}
}

func newHabitAddCmd(app *App) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   `add "<name>"`,
		Short: "Start tracking a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := domain.ActivityCategory(strings.ToLower(category))
			if !domain.ValidCategories[cat] {
				return fmt.Errorf("unknown category %q (expected %s)", category, joinCategories())
			}
			h, err := app.Habits.Add(context.Background(), args[0], cat)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHabitAdded(h))
			return nil
		},
	}
	addCategoryFlag(cmd.Flags(), &category)
	return cmd
}

func newHabitRemoveCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   `remove "<name>"`,
		Short: "Stop tracking a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && app.IsInteractive() {
				confirmed := false
				form := confirmForm(fmt.Sprintf("Remove %q and its completion history?", args[0]), &confirmed)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Cancelled.")
					return nil
				}
			}
			h, err := app.Habits.Remove(context.Background(), args[0])
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no habit matching %q", args[0])
				}
				return err
			}
			fmt.Printf("Removed %q.\n", h.Name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}

func newHabitDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   `done "<name>"`,
		Short: "Mark a habit completed for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Habits.Complete(context.Background(), args[0])
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no habit matching %q", args[0])
				}
				return err
			}
			fmt.Print(formatter.FormatHabitCompleted(h))
			return nil
		},
	}
}
