package formatter

import "fmt"

// FormatMinutes renders a minute count as "45m" or "2h 05m".
func FormatMinutes(min float64) string {
	whole := int(min + 0.5)
	if whole < 60 {
		return fmt.Sprintf("%dm", whole)
	}
	return fmt.Sprintf("%dh %02dm", whole/60, whole%60)
}

// FormatHours renders an hour count with one decimal, e.g. "3.5h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// FormatMoney renders a cost amount, e.g. "$1,234" stays plain "$1234"
// to keep output locale-free.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.0f", amount)
}

// FormatPct renders a percentage with one decimal.
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// TruncID shortens a long identifier for display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
