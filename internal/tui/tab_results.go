package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jeppcode/KPIVisualization/internal/cli"
	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/tui/components"
	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

// chartLimit is the fixed half-range of the change chart, in percent.
const chartLimit = 100

func (a App) renderResultsTab(cw, contentH int) string {
	rows := a.cmp.Rows()

	var b strings.Builder
	table := components.ContentCard("Base vs. scenario (yearly)", a.renderComparisonTable(rows, cw), cw)
	b.WriteString(table)
	b.WriteString("\n")

	// Remaining height goes to the chart: card border + title + zero
	// line + labels take 5 rows.
	chartH := (contentH - lipgloss.Height(table) - 5) / 2
	if chartH < 2 {
		chartH = 2
	}
	if chartH > 8 {
		chartH = 8
	}

	values := make([]float64, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r.ChangePct
		labels[i] = r.Metric.ShortLabel()
	}
	chart := components.ChangeChart(values, labels, chartLimit, components.CardInnerWidth(cw), chartH)
	b.WriteString(components.ContentCard("Change % per KPI", chart, cw))

	return b.String()
}

func (a App) renderComparisonTable(rows []kpi.Row, cw int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	inner := components.CardInnerWidth(cw)
	labelW := 18
	colW := (inner - labelW) / 4
	if colW < 12 {
		colW = 12
	}

	cell := func(style lipgloss.Style, s string) string {
		return space.Render(strings.Repeat(" ", max(0, colW-lipgloss.Width(s)))) + style.Render(s)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", labelW, "KPI")))
	for _, h := range []string{"Base", "Scenario", "Change", "Change %"} {
		b.WriteString(cell(headerStyle, h))
	}
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("─", labelW+4*colW)))

	for _, r := range rows {
		signal := lipgloss.NewStyle().Foreground(t.Signal(r.Indicator == kpi.Positive)).Background(t.Surface)
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, r.Label)))
		b.WriteString(cell(valueStyle, formatMetric(r.Metric, r.Base, a.currency)))
		b.WriteString(cell(labelStyle, formatMetric(r.Metric, r.Scenario, a.currency)))
		b.WriteString(cell(signal, cli.FormatSigned(r.Change, 0)))
		b.WriteString(cell(signal, cli.FormatSignedPercent(r.ChangePct)))
	}
	return b.String()
}
