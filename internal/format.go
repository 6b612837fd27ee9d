package internal

import "fmt"

// FormatDollars renders an axis value as a compact dollar amount:
// $3.2B, $2.5M, $12K, $999. Negative values fall through to the plain case.
func FormatDollars(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.1fB", v*1e-9)
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v*1e-6)
	case v >= 1e3:
		return fmt.Sprintf("$%.0fK", v*1e-3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// DollarTickFormatter is FormatDollars shaped as a go-chart ValueFormatter
func DollarTickFormatter(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return FormatDollars(n)
	case float32:
		return FormatDollars(float64(n))
	case int:
		return FormatDollars(float64(n))
	case int64:
		return FormatDollars(float64(n))
	}
	return fmt.Sprint(v)
}
