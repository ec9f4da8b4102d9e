package render

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatKey converts a snake_case field identifier into a
// human-readable label: "total_assets" -> "Total Assets".
func FormatKey(key string) string {
	if key == "" {
		return ""
	}

	parts := strings.Split(key, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

var numberPrinter = message.NewPrinter(language.English)

// formatNumber renders a numeric value with thousands separators.
// Integral values drop the fractional part.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return numberPrinter.Sprintf("%d", int64(f))
	}
	return numberPrinter.Sprintf("%.2f", f)
}
