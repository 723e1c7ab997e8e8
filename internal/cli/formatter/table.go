package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders a padded-column table with a dim separator under the
// header row. Column widths follow the widest visible cell, so styled cells
// are measured after ANSI stripping.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = StyleHeader.Render(h) + padding(widths[i]-lipgloss.Width(h))
	}
	writeRow(&b, headerCells)

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, rule)

	for _, row := range rows {
		cells := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = cell + padding(widths[i]-lipgloss.Width(cell))
		}
		writeRow(&b, cells)
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, c := range cells {
		if i == len(cells)-1 {
			// No trailing padding on the last column.
			c = strings.TrimRight(c, " ")
		}
		b.WriteString(c)
		if i < len(cells)-1 {
			b.WriteString(padding(colGap))
		}
	}
	b.WriteString("\n")
}

func padding(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
