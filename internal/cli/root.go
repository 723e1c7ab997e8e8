package cli

import (
	"github.com/okonkwoa/ataraxia/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Chat          service.ChatService
	Habits        service.HabitService
	Stress        service.StressService
	Notifications service.NotificationService
	Import        service.ImportService

	// ModelEnabled reports whether a local language model is configured.
	// The chat surfaces a hint when it is not.
	ModelEnabled bool

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "ataraxia" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ataraxia",
		Short: "A conversational wellness companion",
		Long: "Ataraxia tracks how you're doing, keeps your habits, and talks things\n" +
			"through with you. Run it with no arguments to start a chat.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app)
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newHabitCmd(app),
		newStressCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}
