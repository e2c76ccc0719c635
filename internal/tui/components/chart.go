package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

// ChangeChart renders vertical bars for signed percentages on a fixed
// -limit..+limit axis with a dashed zero line. Bars grow up for positive
// values and down for negative ones; values beyond the axis are clipped.
// height is the number of rows on each side of the zero line.
func ChangeChart(values []float64, labels []string, limit float64, width, height int) string {
	if len(values) == 0 || limit <= 0 {
		return ""
	}
	if height < 2 {
		height = 2
	}
	t := theme.Active

	yLabelW := len(formatAxisLabel(-limit)) + 1
	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 2
	barW := (chartW - gap*(n+1)) / n
	if barW < 1 {
		barW = 1
		gap = 1
	}
	if barW > 12 {
		barW = 12
	}
	axisLen := n*barW + (n+1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	surface := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	zeroStyle := lipgloss.NewStyle().Foreground(t.ZeroLine).Background(t.Surface)

	// Pre-compute tick labels at the top, middle and bottom of each half.
	tickLabels := map[int]string{
		height:      formatAxisLabel(limit),
		height / 2:  formatAxisLabel(limit / 2),
		-height / 2: formatAxisLabel(-limit / 2),
		-height:     formatAxisLabel(-limit),
	}

	var b strings.Builder
	writeRow := func(row int) {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(surface.Render(strings.Repeat(" ", gap)))
		for i, v := range values {
			if i > 0 {
				b.WriteString(surface.Render(strings.Repeat(" ", gap)))
			}
			b.WriteString(barCell(v, limit, height, row, barW, blocks))
		}
		b.WriteString(surface.Render(strings.Repeat(" ", gap)))
		b.WriteString("\n")
	}

	for row := height; row >= 1; row-- {
		writeRow(row)
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("┼"))
	b.WriteString(zeroStyle.Render(strings.Repeat("╌", axisLen)))
	b.WriteString("\n")

	for row := -1; row >= -height; row-- {
		writeRow(row)
	}

	// X-axis labels, centered under each bar.
	if len(labels) == n {
		b.WriteString(surface.Render(strings.Repeat(" ", yLabelW+1+gap)))
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		slot := barW + gap
		for _, lbl := range labels {
			b.WriteString(labelStyle.Render(centerText(truncate(lbl, slot-1), slot)))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// barCell renders one bar's cell for the given row. Rows above zero are
// 1..height, rows below are -1..-height.
func barCell(v, limit float64, height, row, barW int, blocks []rune) string {
	t := theme.Active
	empty := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", barW))

	clipped := math.Max(-limit, math.Min(limit, v))
	rowsFilled := math.Abs(clipped) / limit * float64(height)
	style := lipgloss.NewStyle().Foreground(t.Signal(v >= 0)).Background(t.Surface)

	if (row > 0) != (v > 0) || v == 0 {
		return empty
	}

	depth := float64(absInt(row)) // 1 = next to the zero line
	switch {
	case rowsFilled >= depth:
		return style.Render(strings.Repeat("█", barW))
	case rowsFilled > depth-1:
		frac := rowsFilled - (depth - 1)
		if row > 0 {
			idx := int(frac * 8)
			if idx < 1 {
				idx = 1
			}
			if idx > 8 {
				idx = 8
			}
			return style.Render(strings.Repeat(string(blocks[idx]), barW))
		}
		// Only the upper half block exists for bars that hang down.
		if frac >= 0.5 {
			return style.Render(strings.Repeat("▀", barW))
		}
		return style.Render(strings.Repeat("▔", barW))
	}
	return empty
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func formatAxisLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%+.0f%%", v)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return string(runes[:1])
	}
	return string(runes[:limit-1]) + "…"
}

func centerText(s string, w int) string {
	pad := w - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
