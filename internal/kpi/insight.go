package kpi

import "github.com/Jeppcode/KPIVisualization/internal/model"

// Insight summarizes how a scenario moves each adjustable KPI and what
// that does to yearly profit.
type Insight struct {
	HitrateBeforePct float64 `json:"hitrate_before_pct" yaml:"hitrate_before_pct"`
	HitrateAfterPct  float64 `json:"hitrate_after_pct" yaml:"hitrate_after_pct"`
	HitrateDeltaPP   float64 `json:"hitrate_delta_pp" yaml:"hitrate_delta_pp"`

	AvgPurchaseBefore float64 `json:"avg_purchase_before" yaml:"avg_purchase_before"`
	AvgPurchaseAfter  float64 `json:"avg_purchase_after" yaml:"avg_purchase_after"`
	AvgPurchaseDelta  float64 `json:"avg_purchase_delta" yaml:"avg_purchase_delta"`

	ProductsBefore float64 `json:"products_per_customer_before" yaml:"products_per_customer_before"`
	ProductsAfter  float64 `json:"products_per_customer_after" yaml:"products_per_customer_after"`
	ProductsDelta  float64 `json:"products_per_customer_delta" yaml:"products_per_customer_delta"`

	ProfitChangePct float64 `json:"profit_change_pct" yaml:"profit_change_pct"`
}

// NewInsight builds the insight for a comparison. "After" values are the
// clamped adjusted KPIs, so they always match what the totals were
// computed from.
func NewInsight(c Comparison) Insight {
	return Insight{
		HitrateBeforePct: model.ToPP(c.BaseKPIs.Hitrate),
		HitrateAfterPct:  model.ToPP(c.AdjustedKPIs.Hitrate),
		HitrateDeltaPP:   model.ToPP(c.AdjustedKPIs.Hitrate - c.BaseKPIs.Hitrate),

		AvgPurchaseBefore: c.BaseKPIs.AvgPurchase,
		AvgPurchaseAfter:  c.AdjustedKPIs.AvgPurchase,
		AvgPurchaseDelta:  c.AdjustedKPIs.AvgPurchase - c.BaseKPIs.AvgPurchase,

		ProductsBefore: c.BaseKPIs.ProductsPerCustomer,
		ProductsAfter:  c.AdjustedKPIs.ProductsPerCustomer,
		ProductsDelta:  c.AdjustedKPIs.ProductsPerCustomer - c.BaseKPIs.ProductsPerCustomer,

		ProfitChangePct: c.Row(model.MetricProfit).ChangePct,
	}
}
