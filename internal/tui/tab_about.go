package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Jeppcode/KPIVisualization/internal/cli"
	"github.com/Jeppcode/KPIVisualization/internal/config"
	"github.com/Jeppcode/KPIVisualization/internal/tui/components"
	"github.com/Jeppcode/KPIVisualization/internal/tui/theme"
)

func (a App) renderAboutTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	formulaStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)

	var howto strings.Builder
	howto.WriteString(labelStyle.Render("Every change recomputes four yearly totals from the inputs:"))
	howto.WriteString("\n\n")
	for _, f := range []string{
		"purchases     = visitors × hitrate",
		"revenue       = purchases × avg purchase",
		"products sold = purchases × products per customer",
		"profit        = revenue × profit margin",
	} {
		howto.WriteString(formulaStyle.Render("  " + f))
		howto.WriteString("\n")
	}
	howto.WriteString("\n")
	howto.WriteString(labelStyle.Render("Scenario adjustments are added to the base values. The adjusted"))
	howto.WriteString("\n")
	howto.WriteString(labelStyle.Render("hitrate is kept within 0-100% and the profit margin stays at base."))

	b := a.bounds
	hr, _, _ := b.DeltaRanges(a.scenario.Base)
	var ranges strings.Builder
	rangeLine := func(label, r string) {
		ranges.WriteString(labelStyle.Render(fmt.Sprintf("%-24s", label)))
		ranges.WriteString(valueStyle.Render(r))
		ranges.WriteString("\n")
	}
	rangeLine("Visitors / year", cli.FormatFixed(b.Visitors.Min, 0)+" – "+cli.FormatFixed(b.Visitors.Max, 0))
	rangeLine("Hitrate", cli.FormatPercent(b.Hitrate.Min)+" – "+cli.FormatPercent(b.Hitrate.Max))
	rangeLine("Avg purchase", cli.FormatAmount(b.AvgPurchase.Min, "")+" – "+cli.FormatAmount(b.AvgPurchase.Max, a.currency))
	rangeLine("Products / customer", cli.FormatFixed(b.ProductsPerCustomer.Min, 2)+" – "+cli.FormatFixed(b.ProductsPerCustomer.Max, 2))
	rangeLine("Profit margin", cli.FormatPercent(b.ProfitMargin.Min)+" – "+cli.FormatPercent(b.ProfitMargin.Max))
	rangeLine("Δ Hitrate", cli.FormatPP(hr.Min*100)+" – "+cli.FormatPP(hr.Max*100))
	rangeLine("Δ Avg purchase", "± base avg purchase")
	rangeLine("Δ Products / customer", "-base – "+cli.FormatSigned(b.ProductsDeltaMax, 2))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.Path()) + "\n")
	info.WriteString(labelStyle.Render("Theme:       ") + valueStyle.Render(t.Name) + "\n")
	info.WriteString(labelStyle.Render("Currency:    ") + valueStyle.Render(a.currency))
	if a.saveErr != nil {
		warn := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
		info.WriteString("\n")
		info.WriteString(warn.Render(fmt.Sprintf("Save failed: %s", a.saveErr)))
	}

	var out strings.Builder
	out.WriteString(components.ContentCard("How it works", howto.String(), cw))
	out.WriteString("\n")
	out.WriteString(components.ContentCard("Input ranges", strings.TrimRight(ranges.String(), "\n"), cw))
	out.WriteString("\n")
	out.WriteString(components.ContentCard("Settings", info.String(), cw))
	return out.String()
}
