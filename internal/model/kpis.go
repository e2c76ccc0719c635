// Package model defines the domain types for KPI scenarios.
package model

// BaseKPIs is the set of store KPIs a scenario starts from.
// Hitrate and ProfitMargin are fractions in [0,1].
type BaseKPIs struct {
	Visitors            int64   `json:"visitors" yaml:"visitors"`
	Hitrate             float64 `json:"hitrate" yaml:"hitrate"`
	AvgPurchase         float64 `json:"avg_purchase" yaml:"avg_purchase"`
	ProductsPerCustomer float64 `json:"products_per_customer" yaml:"products_per_customer"`
	ProfitMargin        float64 `json:"profit_margin" yaml:"profit_margin"`
}

// ScenarioDelta holds additive adjustments to a BaseKPIs.
// HitrateDelta is a fraction; use PP to convert from percentage points.
// The zero value is the base scenario.
type ScenarioDelta struct {
	HitrateDelta             float64 `json:"hitrate_delta" yaml:"hitrate_delta"`
	AvgPurchaseDelta         float64 `json:"avg_purchase_delta" yaml:"avg_purchase_delta"`
	ProductsPerCustomerDelta float64 `json:"products_per_customer_delta" yaml:"products_per_customer_delta"`
}

// IsZero reports whether no adjustment is applied.
func (d ScenarioDelta) IsZero() bool {
	return d.HitrateDelta == 0 &&
		d.AvgPurchaseDelta == 0 &&
		d.ProductsPerCustomerDelta == 0
}

// PP converts percentage points to a fraction.
// e.g., PP(2) -> 0.02
func PP(points float64) float64 {
	return points / 100
}

// ToPP converts a fraction to percentage points.
func ToPP(fraction float64) float64 {
	return fraction * 100
}
