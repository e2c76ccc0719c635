package model

// DerivedMetrics holds the yearly totals derived from a KPI set.
type DerivedMetrics struct {
	Purchases    float64 `json:"purchases" yaml:"purchases"`
	Revenue      float64 `json:"revenue" yaml:"revenue"`
	ProductsSold float64 `json:"products_sold" yaml:"products_sold"`
	Profit       float64 `json:"profit" yaml:"profit"`
}

// Sub returns the pairwise difference m - o.
func (m DerivedMetrics) Sub(o DerivedMetrics) DerivedMetrics {
	return DerivedMetrics{
		Purchases:    m.Purchases - o.Purchases,
		Revenue:      m.Revenue - o.Revenue,
		ProductsSold: m.ProductsSold - o.ProductsSold,
		Profit:       m.Profit - o.Profit,
	}
}

// Metric identifies one of the four derived totals.
type Metric int

const (
	MetricPurchases Metric = iota
	MetricRevenue
	MetricProductsSold
	MetricProfit
)

// AllMetrics lists metrics in display order.
var AllMetrics = []Metric{MetricPurchases, MetricRevenue, MetricProductsSold, MetricProfit}

// Value returns the total for metric k.
func (m DerivedMetrics) Value(k Metric) float64 {
	switch k {
	case MetricPurchases:
		return m.Purchases
	case MetricRevenue:
		return m.Revenue
	case MetricProductsSold:
		return m.ProductsSold
	case MetricProfit:
		return m.Profit
	}
	return 0
}

// Label returns the display name of the metric.
func (k Metric) Label() string {
	switch k {
	case MetricPurchases:
		return "Total Purchases"
	case MetricRevenue:
		return "Revenue"
	case MetricProductsSold:
		return "Products Sold"
	case MetricProfit:
		return "Profit"
	}
	return "Unknown"
}

// ShortLabel is the compact name used on cards and chart axes.
func (k Metric) ShortLabel() string {
	switch k {
	case MetricPurchases:
		return "Purchases"
	case MetricRevenue:
		return "Revenue"
	case MetricProductsSold:
		return "Products"
	case MetricProfit:
		return "Profit"
	}
	return "?"
}

// IsCurrency reports whether the metric is a money amount.
func (k Metric) IsCurrency() bool {
	return k == MetricRevenue || k == MetricProfit
}
