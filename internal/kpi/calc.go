// Package kpi computes yearly retail totals from store KPIs and compares
// what-if scenarios against their base case.
package kpi

import (
	"math"

	"github.com/Jeppcode/KPIVisualization/internal/model"
)

// ComputeMetrics derives the four yearly totals from a KPI set.
// Inputs are clamped to their valid ranges first.
func ComputeMetrics(k model.BaseKPIs) model.DerivedMetrics {
	k = Clamp(k)

	purchases := float64(k.Visitors) * k.Hitrate
	revenue := purchases * k.AvgPurchase

	return model.DerivedMetrics{
		Purchases:    purchases,
		Revenue:      revenue,
		ProductsSold: purchases * k.ProductsPerCustomer,
		Profit:       revenue * k.ProfitMargin,
	}
}

// Clamp forces fractions into [0,1] and quantities to be non-negative.
func Clamp(k model.BaseKPIs) model.BaseKPIs {
	if k.Visitors < 0 {
		k.Visitors = 0
	}
	k.Hitrate = clamp01(k.Hitrate)
	k.AvgPurchase = nonNegative(k.AvgPurchase)
	k.ProductsPerCustomer = nonNegative(k.ProductsPerCustomer)
	k.ProfitMargin = clamp01(k.ProfitMargin)
	return k
}

// Apply merges a scenario delta into base and clamps the result.
// ProfitMargin is carried over from base unchanged.
func Apply(base model.BaseKPIs, d model.ScenarioDelta) model.BaseKPIs {
	base = Clamp(base)
	return Clamp(model.BaseKPIs{
		Visitors:            base.Visitors,
		Hitrate:             base.Hitrate + d.HitrateDelta,
		AvgPurchase:         base.AvgPurchase + d.AvgPurchaseDelta,
		ProductsPerCustomer: base.ProductsPerCustomer + d.ProductsPerCustomerDelta,
		ProfitMargin:        base.ProfitMargin,
	})
}

// ClampNotes describes every input that Apply would clamp.
// An empty result means the inputs were already in range.
func ClampNotes(base model.BaseKPIs, d model.ScenarioDelta) []string {
	var notes []string
	if base.Visitors < 0 {
		notes = append(notes, "visitors clamped to 0")
	}
	notes = appendFractionNote(notes, "hitrate", base.Hitrate)
	if base.AvgPurchase < 0 || math.IsNaN(base.AvgPurchase) {
		notes = append(notes, "avg purchase clamped to 0")
	}
	if base.ProductsPerCustomer < 0 || math.IsNaN(base.ProductsPerCustomer) {
		notes = append(notes, "products per customer clamped to 0")
	}
	notes = appendFractionNote(notes, "profit margin", base.ProfitMargin)

	c := Clamp(base)
	notes = appendFractionNote(notes, "adjusted hitrate", c.Hitrate+d.HitrateDelta)
	if c.AvgPurchase+d.AvgPurchaseDelta < 0 {
		notes = append(notes, "adjusted avg purchase clamped to 0")
	}
	if c.ProductsPerCustomer+d.ProductsPerCustomerDelta < 0 {
		notes = append(notes, "adjusted products per customer clamped to 0")
	}
	return notes
}

func appendFractionNote(notes []string, name string, v float64) []string {
	switch {
	case v < 0 || math.IsNaN(v):
		return append(notes, name+" clamped to 0")
	case v > 1:
		return append(notes, name+" clamped to 1")
	}
	return notes
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
