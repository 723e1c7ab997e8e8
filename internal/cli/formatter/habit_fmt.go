package formatter

import (
	"fmt"
	"strings"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

// FormatHabitList renders the habit table shown by `habit list`.
func FormatHabitList(habits []*domain.Habit) string {
	headers := []string{"Habit", "Category", "Streak", "Since"}
	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, []string{
			StyleFg.Render(h.Name),
			CategoryBadge(h.Category),
			Streak(h.Streak),
			Dim(HumanDate(h.CreatedAt)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatHabitAdded renders the confirmation line after adding a habit.
func FormatHabitAdded(h *domain.Habit) string {
	return fmt.Sprintf("%s %s %s",
		StyleGreen.Render("✔"),
		StyleFg.Render("Added "+fmt.Sprintf("%q", h.Name)),
		Dim("("+string(h.Category)+")"))
}

// FormatHabitCompleted renders the confirmation line after completing a habit.
func FormatHabitCompleted(h *domain.Habit) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ "))
	b.WriteString(StyleFg.Render(fmt.Sprintf("Nice work on %q.", h.Name)))
	if h.Streak > 1 {
		b.WriteString(" " + StyleYellow.Render(fmt.Sprintf("That's %d days in a row!", h.Streak)))
	}
	return b.String()
}
