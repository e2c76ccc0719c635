package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jeppcode/KPIVisualization/internal/cli"
	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/model"
	"github.com/Jeppcode/KPIVisualization/internal/tui/components"
	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

const (
	sliderLabelW = 22
	sliderValueW = 16
)

func (a App) renderInputsTab(cw int) string {
	var b strings.Builder

	if a.isWideLayout() {
		widths := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Base KPIs", a.renderSliders(0, firstScenarioField, widths[0]), widths[0]),
			components.ContentCard("Scenario", a.renderSliders(firstScenarioField, fieldCount, widths[1]), widths[1]),
		}))
	} else {
		b.WriteString(components.ContentCard("Base KPIs", a.renderSliders(0, firstScenarioField, cw), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Scenario", a.renderSliders(firstScenarioField, fieldCount, cw), cw))
	}
	b.WriteString("\n")
	b.WriteString(components.MetricCardRow(a.metricCards(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Insight", a.renderInsight(), cw))

	return b.String()
}

// renderSliders renders fields [from, to) for a card of outer width cardW.
func (a App) renderSliders(from, to, cardW int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cardW)
	barW := inner - 2 - sliderLabelW - 1 - 1 - sliderValueW

	var b strings.Builder
	for i := from; i < to; i++ {
		f := inputFields[i]
		v := f.get(a.scenario)
		r := f.rng(a.bounds, a.scenario.Base)

		if a.editing && i == a.cursor {
			marker := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Selected).Render("▸ ")
			label := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Selected).Bold(true).
				Render(fmt.Sprintf("%-*s ", sliderLabelW, f.label))
			b.WriteString(marker + label + a.input.View())
		} else {
			b.WriteString(components.RenderSlider(components.Slider{
				Label:    f.label,
				Value:    f.format(v, a.currency),
				Fraction: r.Fraction(v),
				Focused:  i == a.cursor && a.activeTab == tabInputs,
				Changed:  i >= firstScenarioField && v != 0,
			}, sliderLabelW, barW, sliderValueW))
		}
		if i < to-1 {
			b.WriteString("\n")
		}
	}

	if a.inputErr != nil && a.cursor >= from && a.cursor < to {
		warn := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
		b.WriteString("\n")
		b.WriteString(warn.Render(a.inputErr.Error()))
	}
	return b.String()
}

// formatMetric renders a derived total in its unit.
func formatMetric(k model.Metric, v float64, currency string) string {
	if k.IsCurrency() {
		return cli.FormatAmount(v, currency)
	}
	return cli.FormatCount(v)
}

func (a App) metricCards() []components.Metric {
	rows := a.cmp.Rows()
	cards := make([]components.Metric, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, components.Metric{
			Label:    r.Metric.Label(),
			Value:    formatMetric(r.Metric, r.Scenario, a.currency),
			Delta:    cli.FormatSignedPercent(r.ChangePct) + " vs. base",
			Positive: r.Indicator == kpi.Positive,
		})
	}
	return cards
}

func (a App) renderInsight() string {
	t := theme.Active
	in := a.insight

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	arrowStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	deltaStyle := lipgloss.NewStyle().Foreground(t.Modified).Background(t.Surface)

	line := func(label, before, after, delta string) string {
		return labelStyle.Render(fmt.Sprintf("%-22s", label)) +
			valueStyle.Render(before) + arrowStyle.Render(" → ") + valueStyle.Render(after) +
			deltaStyle.Render("  "+delta)
	}

	var b strings.Builder
	b.WriteString(line("Hitrate",
		fmt.Sprintf("%.1f%%", in.HitrateBeforePct),
		fmt.Sprintf("%.1f%%", in.HitrateAfterPct),
		cli.FormatPP(in.HitrateDeltaPP)))
	b.WriteString("\n")
	b.WriteString(line("Avg purchase",
		cli.FormatAmount(in.AvgPurchaseBefore, a.currency),
		cli.FormatAmount(in.AvgPurchaseAfter, a.currency),
		cli.FormatSigned(in.AvgPurchaseDelta, 0)))
	b.WriteString("\n")
	b.WriteString(line("Products / customer",
		cli.FormatFixed(in.ProductsBefore, 2),
		cli.FormatFixed(in.ProductsAfter, 2),
		cli.FormatSigned(in.ProductsDelta, 2)))
	b.WriteString("\n\n")

	profitStyle := lipgloss.NewStyle().
		Foreground(t.Signal(in.ProfitChangePct >= 0)).
		Background(t.Surface).
		Bold(true)
	b.WriteString(labelStyle.Render("Yearly profit changes by "))
	b.WriteString(profitStyle.Render(cli.FormatSignedPercent(in.ProfitChangePct)))

	return b.String()
}
