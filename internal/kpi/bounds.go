package kpi

import (
	"math"

	"github.com/Jeppcode/KPIVisualization/internal/model"
)

// Range is the allowed interval and step of one input.
type Range struct {
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max"`
	Step    float64 `json:"step" yaml:"step"`
	Default float64 `json:"default" yaml:"default"`
}

// Clamp returns v limited to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Fraction returns the position of v within the range as 0..1.
func (r Range) Fraction(v float64) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return 0
	}
	return clamp01((v - r.Min) / span)
}

// Bounds holds the input-layer ranges. Hitrate and margin ranges are in
// fractions; the delta ranges for avg purchase and products per customer
// are derived from the base values, see DeltaRanges.
type Bounds struct {
	Visitors            Range `json:"visitors" yaml:"visitors"`
	Hitrate             Range `json:"hitrate" yaml:"hitrate"`
	AvgPurchase         Range `json:"avg_purchase" yaml:"avg_purchase"`
	ProductsPerCustomer Range `json:"products_per_customer" yaml:"products_per_customer"`
	ProfitMargin        Range `json:"profit_margin" yaml:"profit_margin"`

	HitrateDelta         Range   `json:"hitrate_delta" yaml:"hitrate_delta"`
	AvgPurchaseDeltaStep float64 `json:"avg_purchase_delta_step" yaml:"avg_purchase_delta_step"`
	ProductsDeltaMax     float64 `json:"products_per_customer_delta_max" yaml:"products_per_customer_delta_max"`
	ProductsDeltaStep    float64 `json:"products_per_customer_delta_step" yaml:"products_per_customer_delta_step"`
}

// DefaultBounds returns the standard widget ranges.
func DefaultBounds() Bounds {
	return Bounds{
		Visitors:            Range{Min: 100_000, Max: 10_000_000, Step: 1_000, Default: 350_000},
		Hitrate:             Range{Min: 0, Max: 1, Step: 0.001, Default: 0.25},
		AvgPurchase:         Range{Min: 0, Max: 2_000, Step: 10, Default: 500},
		ProductsPerCustomer: Range{Min: 0.9, Max: 100, Step: 0.01, Default: 1.7},
		ProfitMargin:        Range{Min: 0, Max: 1, Step: 0.001, Default: 0.08},

		HitrateDelta:         Range{Min: -0.05, Max: 0.10, Step: 0.001},
		AvgPurchaseDeltaStep: 1,
		ProductsDeltaMax:     2,
		ProductsDeltaStep:    0.01,
	}
}

// Defaults returns the base KPI set at each range's default.
func (b Bounds) Defaults() model.BaseKPIs {
	return model.BaseKPIs{
		Visitors:            int64(b.Visitors.Default),
		Hitrate:             b.Hitrate.Default,
		AvgPurchase:         b.AvgPurchase.Default,
		ProductsPerCustomer: b.ProductsPerCustomer.Default,
		ProfitMargin:        b.ProfitMargin.Default,
	}
}

// ClampBase limits every base input to its range.
func (b Bounds) ClampBase(k model.BaseKPIs) model.BaseKPIs {
	k.Visitors = int64(math.Round(b.Visitors.Clamp(float64(k.Visitors))))
	k.Hitrate = b.Hitrate.Clamp(k.Hitrate)
	k.AvgPurchase = b.AvgPurchase.Clamp(k.AvgPurchase)
	k.ProductsPerCustomer = b.ProductsPerCustomer.Clamp(k.ProductsPerCustomer)
	k.ProfitMargin = b.ProfitMargin.Clamp(k.ProfitMargin)
	return k
}

// DeltaRanges returns the delta ranges for the given base:
// hitrate per Bounds.HitrateDelta, avg purchase within ±base, and
// products per customer from -base up to ProductsDeltaMax.
func (b Bounds) DeltaRanges(base model.BaseKPIs) (hitrate, avgPurchase, products Range) {
	hitrate = b.HitrateDelta
	avgPurchase = Range{
		Min:  -base.AvgPurchase,
		Max:  base.AvgPurchase,
		Step: b.AvgPurchaseDeltaStep,
	}
	products = Range{
		Min:  -base.ProductsPerCustomer,
		Max:  b.ProductsDeltaMax,
		Step: b.ProductsDeltaStep,
	}
	return hitrate, avgPurchase, products
}

// ClampDelta limits every delta to the range allowed for base.
func (b Bounds) ClampDelta(base model.BaseKPIs, d model.ScenarioDelta) model.ScenarioDelta {
	hr, ap, pp := b.DeltaRanges(base)
	d.HitrateDelta = hr.Clamp(d.HitrateDelta)
	d.AvgPurchaseDelta = ap.Clamp(d.AvgPurchaseDelta)
	d.ProductsPerCustomerDelta = pp.Clamp(d.ProductsPerCustomerDelta)
	return d
}
