package render

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// englishPrinter renders grouped numbers (1,234,567).
var englishPrinter = message.NewPrinter(language.English)

// -----------------------------------------------------------------------------

// FormatCountShort renders axis values with K/M/B suffixes and one decimal,
// leaving values under a thousand as plain integers.
func FormatCountShort(v float64) string {
	switch {
	case v >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// -----------------------------------------------------------------------------

// FormatGrouped renders an integer with thousands separators.
func FormatGrouped(v int64) string {
	return englishPrinter.Sprintf("%d", v)
}

// -----------------------------------------------------------------------------

// FormatGroupedFloat renders a float with thousands separators and two decimals.
func FormatGroupedFloat(v float64) string {
	return englishPrinter.Sprintf("%.2f", v)
}
