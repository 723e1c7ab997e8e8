package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/okonkwoa/ataraxia/internal/domain"
)

// Soft, calm palette; nothing in a wellness companion should shout.
var (
	ColorGreen  = lipgloss.Color("#a7c080")
	ColorYellow = lipgloss.Color("#dbbc7f")
	ColorRed    = lipgloss.Color("#e67e80")
	ColorBlue   = lipgloss.Color("#7fbbb3")
	ColorPurple = lipgloss.Color("#d699b6")
	ColorDim    = lipgloss.Color("#859289")
	ColorFg     = lipgloss.Color("#d3c6aa")
	ColorHeader = lipgloss.Color("#83c092")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StressColor returns the lipgloss style for the given stress level.
func StressColor(level domain.StressLevel) lipgloss.Style {
	switch level {
	case domain.StressVeryHigh, domain.StressHigh:
		return StyleRed
	case domain.StressModerate:
		return StyleYellow
	case domain.StressLow, domain.StressVeryLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StressPill returns a colored stress indicator string such as "● high".
func StressPill(level domain.StressLevel) string {
	label := strings.ReplaceAll(string(level), "_", " ")
	return StressColor(level).Render("● " + label)
}

// CategoryBadge returns a styled activity category label.
func CategoryBadge(c domain.ActivityCategory) string {
	var style lipgloss.Style
	switch c {
	case domain.CategoryMindfulness:
		style = StylePurple
	case domain.CategoryExercise:
		style = StyleBlue
	case domain.CategoryReflection:
		style = StyleYellow
	case domain.CategoryLearning:
		style = StyleGreen
	default:
		style = StyleFg
	}
	return style.Render(string(c))
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
