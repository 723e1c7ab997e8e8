package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/okonkwoa/ataraxia/internal/cli/formatter"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/service"
)

// turnDoneMsg carries the outcome of a completed chat turn back into Update.
type turnDoneMsg struct {
	result *service.TurnResult
	err    error
}

// chatModel is the bubbletea Model for the interactive chat session.
type chatModel struct {
	input   textinput.Model
	spinner spinner.Model
	width   int

	app *App

	// busy is true while a turn is being processed; input is ignored.
	busy     bool
	quitting bool
}

func newChatModel(app *App) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = formatter.FormatUserMessage("")
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return chatModel{
		input:   ti,
		spinner: sp,
		app:     app,
	}
}

func (m chatModel) Init() tea.Cmd {
	intro := formatter.FormatChatWelcome(m.app.ModelEnabled)
	if h := renderRecentHistory(m.app); h != "" {
		intro += "\n" + h
	}
	return tea.Batch(
		textinput.Blink,
		tea.Println(intro),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 8
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			m.quitting = true
			return m, tea.Quit
		}
		if m.busy {
			// A turn is in flight; drop keystrokes until it completes.
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			if isQuitWord(text) {
				m.quitting = true
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.busy = true
			return m, tea.Batch(
				tea.Println(formatter.FormatUserMessage(text)),
				m.spinner.Tick,
				submitTurn(m.app, text),
			)
		}

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case turnDoneMsg:
		m.busy = false
		return m, tea.Println(renderTurn(m.app, msg.result, msg.err))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	if m.busy {
		return m.spinner.View() + " thinking…\n"
	}
	return m.input.View() + "\n"
}

// submitTurn runs the chat turn off the Update loop.
func submitTurn(app *App, text string) tea.Cmd {
	return func() tea.Msg {
		result, err := app.Chat.ProcessTurn(context.Background(), text)
		return turnDoneMsg{result: result, err: err}
	}
}

// renderTurn produces the full printed block for one completed turn:
// the optional banner, the reply, any suggestions, and active toasts.
func renderTurn(app *App, result *service.TurnResult, err error) string {
	if err != nil {
		if errors.Is(err, service.ErrTurnInFlight) {
			return formatter.Dim("Still thinking about the last message.")
		}
		return formatter.FormatBanner(err.Error())
	}

	var b strings.Builder
	if result.Banner != "" {
		b.WriteString(formatter.FormatBanner(result.Banner))
		b.WriteString("\n")
	}
	b.WriteString(formatter.FormatAssistantMessage(result.Reply))
	if len(result.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.FormatSuggestions(result.Suggestions))
	}
	if toasts := renderToasts(app); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}
	return b.String()
}

// recentHistoryLines is how much of the persisted transcript a resumed
// session replays before the prompt.
const recentHistoryLines = 6

// renderRecentHistory returns the tail of the saved conversation so the
// user sees where the last session left off.
func renderRecentHistory(app *App) string {
	msgs, err := app.Chat.History(context.Background(), recentHistoryLines)
	if err != nil || len(msgs) == 0 {
		return ""
	}
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == domain.RoleUser {
			lines = append(lines, formatter.FormatUserMessage(m.Text))
		} else {
			lines = append(lines, formatter.FormatAssistantMessage(m.Text))
		}
	}
	return strings.Join(lines, "\n")
}

func renderToasts(app *App) string {
	active, err := app.Notifications.Active(context.Background())
	if err != nil || len(active) == 0 {
		return ""
	}
	lines := make([]string, 0, len(active))
	for _, n := range active {
		lines = append(lines, formatter.FormatToast(n))
	}
	return strings.Join(lines, "\n")
}

func isQuitWord(text string) bool {
	switch strings.ToLower(text) {
	case "quit", "exit", "bye", "/quit", "/exit":
		return true
	}
	return false
}
