package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

// Slider describes one input row: a label, the formatted value, and the
// value's position within its range as 0..1.
type Slider struct {
	Label    string
	Value    string
	Fraction float64
	Focused  bool
	// Changed marks a scenario slider that is away from zero.
	Changed bool
}

// RenderSlider renders a labeled slider bar. labelW and valueW are the
// column widths for the label and value text.
func RenderSlider(s Slider, labelW, barW, valueW int) string {
	t := theme.Active

	pct := s.Fraction
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if barW < 4 {
		barW = 4
	}

	bg := t.Surface
	fill := t.Accent
	if s.Focused {
		bg = t.Selected
		fill = t.AccentBright
	}

	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SliderEmpty)

	marker := "  "
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(bg)
	if s.Focused {
		marker = "▸ "
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(bg)
	if s.Focused {
		labelStyle = labelStyle.Foreground(t.Accent).Bold(true)
	}
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
	if s.Changed {
		valueStyle = valueStyle.Foreground(t.Modified)
	}
	spaceStyle := lipgloss.NewStyle().Background(bg)

	return markerStyle.Render(marker) +
		labelStyle.Render(fmt.Sprintf("%-*s", labelW, s.Label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		valueStyle.Render(fmt.Sprintf("%*s", valueW, s.Value))
}
