package formatter

import (
	"strings"

	"github.com/okonkwoa/ataraxia/internal/domain"
)

const noteDisplayLimit = 60

// FormatStressHistory renders stress entries newest first.
func FormatStressHistory(entries []*domain.StressEntry) string {
	headers := []string{"When", "Level", "Note"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			Dim(HumanTimestamp(e.CreatedAt)),
			StressPill(e.Level),
			StyleFg.Render(truncateNote(e.Note)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatStressRecorded renders the confirmation line after logging stress.
func FormatStressRecorded(e *domain.StressEntry) string {
	return StyleGreen.Render("✔ ") + StyleFg.Render("Logged ") + StressPill(e.Level)
}

func truncateNote(note string) string {
	note = strings.TrimSpace(note)
	if len(note) <= noteDisplayLimit {
		return note
	}
	return note[:noteDisplayLimit-3] + "..."
}
