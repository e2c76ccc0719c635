// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatFixed formats v with the given number of decimals and thousands
// separators. Rounding is half away from zero on the decimal value, so
// 2.5 -> "3" and 0.125 -> "0.13".
func FormatFixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	s := decimal.NewFromFloat(v).StringFixed(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + s
	}
	out := FormatNumber(n)
	if hasFrac {
		out += "." + frac
	}
	if sign != "" && strings.Trim(out, "0.,") == "" {
		return out
	}
	return sign + out
}

// FormatCount formats a derived total such as purchases or products sold.
func FormatCount(v float64) string {
	return FormatFixed(v, 0)
}

// FormatAmount formats a currency amount with an optional unit suffix.
// e.g., (2500000, "SEK") -> "2,500,000 SEK"
func FormatAmount(v float64, currency string) string {
	s := FormatFixed(v, 0)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatSigned formats a change with an explicit sign.
// e.g., 500000 -> "+500,000", -12.34 -> "-12"
func FormatSigned(v float64, places int32) string {
	s := FormatFixed(v, places)
	if v >= 0 && !strings.HasPrefix(s, "-") {
		return "+" + s
	}
	return s
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatSignedPercent formats an already-scaled percent value with sign.
// e.g., 20 -> "+20.0%"
func FormatSignedPercent(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}

// FormatPP formats a percentage-point change.
// e.g., 2 -> "+2.0 p.p."
func FormatPP(pp float64) string {
	return fmt.Sprintf("%+.1f p.p.", pp)
}
