package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Jeppcode/KPIVisualization/internal/cli"
	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/model"
)

var (
	flagVisitors     int64
	flagHitrate      float64
	flagAvgPurchase  float64
	flagProducts     float64
	flagMargin       float64
	flagDHitrate     float64
	flagDAvgPurchase float64
	flagDProducts    float64
	flagFormat       string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Compute base and scenario totals once and print them",
	Example: "  ripple eval --d-hitrate 2\n" +
		"  ripple eval --visitors 1000000 --d-avg-purchase 50 --format json",
	RunE: runEval,
}

func init() {
	f := evalCmd.Flags()
	f.Int64Var(&flagVisitors, "visitors", 0, "Visitors per year (default from config)")
	f.Float64Var(&flagHitrate, "hitrate", 0, "Hitrate in percent (default from config)")
	f.Float64Var(&flagAvgPurchase, "avg-purchase", 0, "Average purchase (default from config)")
	f.Float64Var(&flagProducts, "ppc", 0, "Products per customer (default from config)")
	f.Float64Var(&flagMargin, "margin", 0, "Profit margin in percent (default from config)")
	f.Float64Var(&flagDHitrate, "d-hitrate", 0, "Hitrate change in percentage points")
	f.Float64Var(&flagDAvgPurchase, "d-avg-purchase", 0, "Average purchase change")
	f.Float64Var(&flagDProducts, "d-ppc", 0, "Products per customer change")
	f.StringVarP(&flagFormat, "format", "o", "table", "Output format: table, json, yaml")
	rootCmd.AddCommand(evalCmd)
}

// evalResult is the machine-readable output of `ripple eval`.
type evalResult struct {
	Currency string               `json:"currency" yaml:"currency"`
	Inputs   model.BaseKPIs       `json:"inputs" yaml:"inputs"`
	Delta    model.ScenarioDelta  `json:"delta" yaml:"delta"`
	Base     model.DerivedMetrics `json:"base" yaml:"base"`
	Adjusted model.DerivedMetrics `json:"adjusted" yaml:"adjusted"`
	Diff     model.DerivedMetrics `json:"diff" yaml:"diff"`
	Rows     []kpi.Row            `json:"rows" yaml:"rows"`
	Insight  kpi.Insight          `json:"insight" yaml:"insight"`
	Notes    []string             `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func runEval(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer func() { _ = log.Sync() }()

	base := cfg.BaseKPIs()
	flags := cmd.Flags()
	if flags.Changed("visitors") {
		base.Visitors = flagVisitors
	}
	if flags.Changed("hitrate") {
		base.Hitrate = model.PP(flagHitrate)
	}
	if flags.Changed("avg-purchase") {
		base.AvgPurchase = flagAvgPurchase
	}
	if flags.Changed("ppc") {
		base.ProductsPerCustomer = flagProducts
	}
	if flags.Changed("margin") {
		base.ProfitMargin = model.PP(flagMargin)
	}
	delta := model.ScenarioDelta{
		HitrateDelta:             model.PP(flagDHitrate),
		AvgPurchaseDelta:         flagDAvgPurchase,
		ProductsPerCustomerDelta: flagDProducts,
	}

	res := evaluate(base, delta, cfg.Display.Currency)
	for _, n := range res.Notes {
		log.Warn("input clamped", zap.String("note", n))
	}
	log.Debug("evaluated",
		zap.Int64("visitors", base.Visitors),
		zap.Float64("hitrate", base.Hitrate),
		zap.Float64("profit_change_pct", res.Insight.ProfitChangePct))

	return writeEval(cmd.OutOrStdout(), res, flagFormat)
}

func evaluate(base model.BaseKPIs, delta model.ScenarioDelta, currency string) evalResult {
	c := kpi.Compare(base, delta)
	return evalResult{
		Currency: currency,
		Inputs:   c.BaseKPIs,
		Delta:    delta,
		Base:     c.Base,
		Adjusted: c.Adjusted,
		Diff:     c.Diff,
		Rows:     c.Rows(),
		Insight:  kpi.NewInsight(c),
		Notes:    kpi.ClampNotes(base, delta),
	}
}

func writeEval(w io.Writer, res evalResult, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "table", "":
		_, err := io.WriteString(w, renderEvalTable(res))
		return err
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func renderEvalTable(res evalResult) string {
	var b strings.Builder
	in := res.Insight

	b.WriteString("\n")
	b.WriteString(cli.RenderTitle("RIPPLE  Base vs. scenario (yearly)"))
	b.WriteString("\n\n")

	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Inputs",
		Headers: []string{"KPI", "Base", "Scenario", "Change"},
		Rows: [][]string{
			{"Visitors / year", cli.FormatNumber(res.Inputs.Visitors), cli.FormatNumber(res.Inputs.Visitors), ""},
			{"Hitrate",
				fmt.Sprintf("%.1f%%", in.HitrateBeforePct),
				fmt.Sprintf("%.1f%%", in.HitrateAfterPct),
				cli.FormatPP(in.HitrateDeltaPP)},
			{"Avg purchase",
				cli.FormatAmount(in.AvgPurchaseBefore, res.Currency),
				cli.FormatAmount(in.AvgPurchaseAfter, res.Currency),
				cli.FormatSigned(in.AvgPurchaseDelta, 0)},
			{"Products / customer",
				cli.FormatFixed(in.ProductsBefore, 2),
				cli.FormatFixed(in.ProductsAfter, 2),
				cli.FormatSigned(in.ProductsDelta, 2)},
			{"Profit margin", cli.FormatPercent(res.Inputs.ProfitMargin), cli.FormatPercent(res.Inputs.ProfitMargin), ""},
		},
	}))
	b.WriteString("\n")

	rows := make([][]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		positive := r.Indicator == kpi.Positive
		rows = append(rows, []string{
			r.Label,
			formatTotal(r, r.Base, res.Currency),
			formatTotal(r, r.Scenario, res.Currency),
			cli.RenderSignal(cli.FormatSigned(r.Change, 0), positive),
			cli.RenderSignal(cli.FormatSignedPercent(r.ChangePct), positive),
		})
	}
	b.WriteString(cli.RenderTable(cli.Table{
		Title:   "Totals",
		Headers: []string{"KPI", "Base", "Scenario", "Change", "Change %"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	b.WriteString(cli.RenderMuted("  Change % (axis -100% .. +100%)"))
	b.WriteString("\n")
	for _, r := range res.Rows {
		b.WriteString(cli.RenderDivergingBar(r.Metric.ShortLabel(), r.ChangePct, 100, 20))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Yearly profit changes by %s\n\n",
		cli.RenderSignal(cli.FormatSignedPercent(in.ProfitChangePct), in.ProfitChangePct >= 0)))

	return b.String()
}

func formatTotal(r kpi.Row, v float64, currency string) string {
	if r.Currency {
		return cli.FormatAmount(v, currency)
	}
	return cli.FormatCount(v)
}
