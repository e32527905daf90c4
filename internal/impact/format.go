package impact

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatKg formats a footprint in kilograms CO2 for display.
// Example: FormatKg(2482) returns "2,482 kg CO₂".
func FormatKg(kg int) string {
	return FormatNumber(int64(kg)) + " kg CO₂"
}

// FormatScore formats a category sub-score with one decimal only when the
// score is fractional. Example: FormatScore(350) returns "350",
// FormatScore(112.5) returns "112.5".
func FormatScore(score float64) string {
	if score == float64(int64(score)) {
		return FormatNumber(int64(score))
	}
	return printer.Sprintf("%.1f", score)
}

// FormatPercent formats a share percentage with one decimal.
// Example: FormatPercent(34.25) returns "34.2%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
