package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okonkwoa/ataraxia/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start a conversation",
		Long:  "Start an interactive conversation. Mention how you feel to log stress, or ask to add, remove, or rename habits in plain language.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app)
		},
	}
}

// runChat starts the interactive TUI when attached to a terminal, and
// falls back to a line-oriented loop on stdin when piped.
func runChat(app *App) error {
	if app.IsInteractive() {
		p := tea.NewProgram(newChatModel(app))
		_, err := p.Run()
		return err
	}
	return runChatPiped(app)
}

// runChatPiped processes one turn per stdin line, printing each exchange.
// Used for scripted sessions and tests.
func runChatPiped(app *App) error {
	fmt.Println(formatter.FormatChatWelcome(app.ModelEnabled))
	if h := renderRecentHistory(app); h != "" {
		fmt.Println(h)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if isQuitWord(text) {
			break
		}

		fmt.Println(formatter.FormatUserMessage(text))
		stop := formatter.StartSpinner("thinking")
		result, err := app.Chat.ProcessTurn(context.Background(), text)
		stop()

		fmt.Println(renderTurn(app, result, err))
	}
	return scanner.Err()
}
