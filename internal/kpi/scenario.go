package kpi

import "github.com/Jeppcode/KPIVisualization/internal/model"

// Scenario is the per-session what-if state: a base KPI set plus the
// adjustments currently applied to it.
type Scenario struct {
	Base  model.BaseKPIs
	Delta model.ScenarioDelta
}

// NewScenario returns a scenario in the base state.
func NewScenario(base model.BaseKPIs) Scenario {
	return Scenario{Base: base}
}

// Reset clears all adjustments.
func (s *Scenario) Reset() {
	s.Delta = model.ScenarioDelta{}
}

// IsBase reports whether no adjustment is applied.
func (s Scenario) IsBase() bool {
	return s.Delta.IsZero()
}

// Compare recomputes the comparison for the current state.
func (s Scenario) Compare() Comparison {
	return Compare(s.Base, s.Delta)
}
