package kpi

import (
	"fmt"

	"github.com/Jeppcode/KPIVisualization/internal/model"
)

// Indicator classifies the direction of a change for display.
type Indicator int

const (
	Positive Indicator = iota // change >= 0
	Negative                  // change < 0
)

func (i Indicator) String() string {
	if i == Negative {
		return "negative"
	}
	return "positive"
}

// MarshalText encodes the indicator as "positive" or "negative".
func (i Indicator) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText decodes "positive" or "negative".
func (i *Indicator) UnmarshalText(b []byte) error {
	switch string(b) {
	case "positive":
		*i = Positive
	case "negative":
		*i = Negative
	default:
		return fmt.Errorf("unknown indicator %q", b)
	}
	return nil
}

// Classify returns Positive for non-negative changes and Negative otherwise.
func Classify(change float64) Indicator {
	if change < 0 {
		return Negative
	}
	return Positive
}

// ComputeDelta returns metrics for the base case, the adjusted case, and
// their difference (adjusted - base).
func ComputeDelta(base model.BaseKPIs, d model.ScenarioDelta) (model.DerivedMetrics, model.DerivedMetrics, model.DerivedMetrics) {
	baseMetrics := ComputeMetrics(base)
	adjusted := ComputeMetrics(Apply(base, d))
	return baseMetrics, adjusted, adjusted.Sub(baseMetrics)
}

// ChangePercent returns the relative change from base to scenario in percent.
// A zero base yields 0.
func ChangePercent(base, scenario float64) float64 {
	if base == 0 {
		return 0
	}
	return (scenario/base - 1) * 100
}

// Row is one line of the comparison table.
type Row struct {
	Metric    model.Metric `json:"-" yaml:"-"`
	Label     string       `json:"kpi" yaml:"kpi"`
	Currency  bool         `json:"currency" yaml:"currency"`
	Base      float64      `json:"base" yaml:"base"`
	Scenario  float64      `json:"scenario" yaml:"scenario"`
	Change    float64      `json:"change" yaml:"change"`
	ChangePct float64      `json:"change_pct" yaml:"change_pct"`
	Indicator Indicator    `json:"indicator" yaml:"indicator"`
}

// Comparison is the full base-versus-scenario result for one interaction.
type Comparison struct {
	BaseKPIs     model.BaseKPIs       `json:"base_kpis" yaml:"base_kpis"`
	AdjustedKPIs model.BaseKPIs       `json:"adjusted_kpis" yaml:"adjusted_kpis"`
	Delta        model.ScenarioDelta  `json:"delta" yaml:"delta"`
	Base         model.DerivedMetrics `json:"base" yaml:"base"`
	Adjusted     model.DerivedMetrics `json:"adjusted" yaml:"adjusted"`
	Diff         model.DerivedMetrics `json:"diff" yaml:"diff"`
}

// Compare evaluates base and delta into a Comparison.
func Compare(base model.BaseKPIs, d model.ScenarioDelta) Comparison {
	b, adj, diff := ComputeDelta(base, d)
	return Comparison{
		BaseKPIs:     Clamp(base),
		AdjustedKPIs: Apply(base, d),
		Delta:        d,
		Base:         b,
		Adjusted:     adj,
		Diff:         diff,
	}
}

// Row returns the comparison row for metric k.
func (c Comparison) Row(k model.Metric) Row {
	base := c.Base.Value(k)
	scenario := c.Adjusted.Value(k)
	change := c.Diff.Value(k)
	return Row{
		Metric:    k,
		Label:     k.Label(),
		Currency:  k.IsCurrency(),
		Base:      base,
		Scenario:  scenario,
		Change:    change,
		ChangePct: ChangePercent(base, scenario),
		Indicator: Classify(change),
	}
}

// Rows returns one row per metric in display order.
func (c Comparison) Rows() []Row {
	rows := make([]Row, 0, len(model.AllMetrics))
	for _, k := range model.AllMetrics {
		rows = append(rows, c.Row(k))
	}
	return rows
}
