package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Jeppcode/KPIVisualization/internal/cli"
	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/model"
)

const (
	fieldVisitors = iota
	fieldHitrate
	fieldAvgPurchase
	fieldProducts
	fieldMargin
	fieldHitrateDelta
	fieldAvgPurchaseDelta
	fieldProductsDelta
	fieldCount // sentinel
)

// firstScenarioField is the index of the first scenario slider.
const firstScenarioField = fieldHitrateDelta

// inputField binds one slider to a value in the scenario. Values are held
// in model units (fractions for rates); scale converts them to the units
// the user sees and types (percent for rates).
type inputField struct {
	label  string
	scale  float64
	places int
	get    func(s kpi.Scenario) float64
	set    func(s *kpi.Scenario, v float64)
	rng    func(b kpi.Bounds, base model.BaseKPIs) kpi.Range
	format func(v float64, currency string) string
}

var inputFields = [fieldCount]inputField{
	fieldVisitors: {
		label: "Visitors / year",
		scale: 1,
		get:   func(s kpi.Scenario) float64 { return float64(s.Base.Visitors) },
		set:   func(s *kpi.Scenario, v float64) { s.Base.Visitors = int64(math.Round(v)) },
		rng:   func(b kpi.Bounds, _ model.BaseKPIs) kpi.Range { return b.Visitors },
		format: func(v float64, _ string) string {
			return cli.FormatNumber(int64(math.Round(v)))
		},
	},
	fieldHitrate: {
		label:  "Hitrate",
		scale:  100,
		places: 1,
		get:    func(s kpi.Scenario) float64 { return s.Base.Hitrate },
		set:    func(s *kpi.Scenario, v float64) { s.Base.Hitrate = v },
		rng:    func(b kpi.Bounds, _ model.BaseKPIs) kpi.Range { return b.Hitrate },
		format: func(v float64, _ string) string { return cli.FormatPercent(v) },
	},
	fieldAvgPurchase: {
		label:  "Avg purchase",
		scale:  1,
		get:    func(s kpi.Scenario) float64 { return s.Base.AvgPurchase },
		set:    func(s *kpi.Scenario, v float64) { s.Base.AvgPurchase = v },
		rng:    func(b kpi.Bounds, _ model.BaseKPIs) kpi.Range { return b.AvgPurchase },
		format: cli.FormatAmount,
	},
	fieldProducts: {
		label:  "Products / customer",
		scale:  1,
		places: 2,
		get:    func(s kpi.Scenario) float64 { return s.Base.ProductsPerCustomer },
		set:    func(s *kpi.Scenario, v float64) { s.Base.ProductsPerCustomer = v },
		rng:    func(b kpi.Bounds, _ model.BaseKPIs) kpi.Range { return b.ProductsPerCustomer },
		format: func(v float64, _ string) string { return cli.FormatFixed(v, 2) },
	},
	fieldMargin: {
		label:  "Profit margin",
		scale:  100,
		places: 1,
		get:    func(s kpi.Scenario) float64 { return s.Base.ProfitMargin },
		set:    func(s *kpi.Scenario, v float64) { s.Base.ProfitMargin = v },
		rng:    func(b kpi.Bounds, _ model.BaseKPIs) kpi.Range { return b.ProfitMargin },
		format: func(v float64, _ string) string { return cli.FormatPercent(v) },
	},
	fieldHitrateDelta: {
		label:  "Δ Hitrate",
		scale:  100,
		places: 1,
		get:    func(s kpi.Scenario) float64 { return s.Delta.HitrateDelta },
		set:    func(s *kpi.Scenario, v float64) { s.Delta.HitrateDelta = v },
		rng: func(b kpi.Bounds, base model.BaseKPIs) kpi.Range {
			r, _, _ := b.DeltaRanges(base)
			return r
		},
		format: func(v float64, _ string) string { return cli.FormatPP(model.ToPP(v)) },
	},
	fieldAvgPurchaseDelta: {
		label: "Δ Avg purchase",
		scale: 1,
		get:   func(s kpi.Scenario) float64 { return s.Delta.AvgPurchaseDelta },
		set:   func(s *kpi.Scenario, v float64) { s.Delta.AvgPurchaseDelta = v },
		rng: func(b kpi.Bounds, base model.BaseKPIs) kpi.Range {
			_, r, _ := b.DeltaRanges(base)
			return r
		},
		format: func(v float64, currency string) string {
			return strings.TrimSpace(cli.FormatSigned(v, 0) + " " + currency)
		},
	},
	fieldProductsDelta: {
		label:  "Δ Products / customer",
		scale:  1,
		places: 2,
		get:    func(s kpi.Scenario) float64 { return s.Delta.ProductsPerCustomerDelta },
		set:    func(s *kpi.Scenario, v float64) { s.Delta.ProductsPerCustomerDelta = v },
		rng: func(b kpi.Bounds, base model.BaseKPIs) kpi.Range {
			_, _, r := b.DeltaRanges(base)
			return r
		},
		format: func(v float64, _ string) string { return cli.FormatSigned(v, 2) },
	},
}

// snap rounds v to the nearest multiple of step.
func snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// stepField moves field idx by n steps and keeps it inside its range.
func (a *App) stepField(idx, n int) {
	f := inputFields[idx]
	r := f.rng(a.bounds, a.scenario.Base)
	v := snap(f.get(a.scenario)+float64(n)*r.Step, r.Step)
	f.set(&a.scenario, r.Clamp(v))
	a.recompute()
}

// setFieldText parses a typed value in display units and applies it.
func (a *App) setFieldText(idx int, text string) error {
	f := inputFields[idx]
	clean := strings.TrimSpace(text)
	clean = strings.TrimSuffix(clean, "%")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %q is not a number", f.label, text)
	}

	r := f.rng(a.bounds, a.scenario.Base)
	f.set(&a.scenario, r.Clamp(v/f.scale))
	a.recompute()
	return nil
}

// fieldInputValue renders the current value the way it is typed.
func (a App) fieldInputValue(idx int) string {
	f := inputFields[idx]
	return strconv.FormatFloat(f.get(a.scenario)*f.scale, 'f', f.places, 64)
}
