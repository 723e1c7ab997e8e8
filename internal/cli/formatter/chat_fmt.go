package formatter

import (
	"strings"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

// FormatChatWelcome renders the greeting shown when the chat opens.
func FormatChatWelcome(modelEnabled bool) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("ataraxia") + Dim(" — your wellness companion") + "\n")
	b.WriteString(StyleFg.Render("How are you feeling today?") + "\n")
	if !modelEnabled {
		b.WriteString(Dim("Running without a local model; responses use built-in rules. Set ATARAXIA_LLM_ENABLED=true to connect one.") + "\n")
	}
	return b.String()
}

// FormatUserMessage renders a chat line the user typed.
func FormatUserMessage(text string) string {
	return StylePurple.Render("you") + Dim(" › ") + StyleFg.Render(text)
}

// FormatAssistantMessage renders the companion's reply.
func FormatAssistantMessage(text string) string {
	return StyleBlue.Render("ataraxia") + Dim(" › ") + StyleFg.Render(text)
}

// FormatBanner renders a transient degradation notice.
func FormatBanner(text string) string {
	return StyleYellow.Render("⚠ " + text)
}

// FormatToast renders a short-lived notification line.
func FormatToast(n *domain.Notification) string {
	switch n.Kind {
	case domain.NotifySuccess:
		return StyleGreen.Render("✔ " + n.Message)
	default:
		return StyleBlue.Render("ℹ " + n.Message)
	}
}

// FormatSuggestions renders extracted activity suggestions as a bulleted list.
func FormatSuggestions(suggestions []domain.ActivitySuggestion) string {
	if len(suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Dim("Some things to try:") + "\n")
	for _, s := range suggestions {
		b.WriteString("  " + StyleGreen.Render("•") + " " + StyleFg.Render(s.Title) +
			" " + Dim("["+string(s.Category)+"]") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
