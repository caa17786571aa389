package consumption

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Display precisions.
const (
	DrinksPrecision = 2
	VolumePrecision = 0
	ABVPrecision    = 3
	MgPrecision     = 0
	PacksPrecision  = 1
)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given precision and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57". Magnitudes beyond the
// int64 range keep their separators.
func FormatFloat(f float64, precision int) string {
	precision = max(precision, 0)
	formatted := strconv.FormatFloat(f, 'f', precision, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return formatted
	}

	intPart, fracPart, found := strings.Cut(formatted, ".")
	digits, negative := strings.CutPrefix(intPart, "-")

	// "-0" rounds to zero and is shown unsigned; "-0.50" keeps its sign.
	if negative && strings.Trim(digits+fracPart, "0") == "" {
		negative = false
	}

	out := groupDigits(digits)
	if negative {
		out = "-" + out
	}
	if found {
		out += "." + fracPart
	}
	return out
}

// groupDigits inserts thousand separators into a string of decimal digits.
func groupDigits(digits string) string {
	if n, err := strconv.ParseUint(digits, 10, 64); err == nil {
		return printer.Sprintf("%d", n)
	}
	// Integer-valued, so %.0f adds no rounding of its own.
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return digits
	}
	return printer.Sprintf("%.0f", v)
}

// FormatDrinks formats a standard-drink count ("0.97").
func FormatDrinks(v float64) string { return FormatFloat(v, DrinksPrecision) }

// FormatMilligrams formats a nicotine amount in whole mg ("1,286").
func FormatMilligrams(v float64) string { return FormatFloat(v, MgPrecision) }

// FormatPacks formats a pack-per-day figure ("6.1").
func FormatPacks(v float64) string { return FormatFloat(v, PacksPrecision) }

// FormatABV formats an ABV fraction as decimal and percent: "0.050 (5.0%)".
func FormatABV(abv float64) string {
	return fmt.Sprintf("%.*f (%.1f%%)", ABVPrecision, abv, abv*100)
}

// formatPlain renders a user-entered number without trailing zeros ("18", "0.33").
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
