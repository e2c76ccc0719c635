package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar. scenario describes the
// current scenario state and currency is shown next to it.
func RenderStatusBar(width int, scenario string, changed bool, currency string) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	left := barStyle.Render(" ") +
		keyStyle.Render("?") + mutedStyle.Render(" help  ") +
		keyStyle.Render("r") + mutedStyle.Render(" reset  ") +
		keyStyle.Render("t") + mutedStyle.Render(" theme  ") +
		keyStyle.Render("q") + mutedStyle.Render(" quit")

	stateStyle := mutedStyle
	if changed {
		stateStyle = lipgloss.NewStyle().Foreground(t.Modified).Background(t.Surface).Bold(true)
	}
	right := stateStyle.Render(scenario)
	if currency != "" {
		right += mutedStyle.Render(" │ " + currency)
	}
	right += barStyle.Render(" ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	gap := barStyle.Render(strings.Repeat(" ", padding))

	return lipgloss.NewStyle().Background(t.Surface).Width(width).MaxWidth(width).Render(left + gap + right)
}
