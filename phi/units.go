package phi

import (
	"math"
	"strconv"
)

// Display precision constants
//
// Token values are computed at full float64 precision and only rounded when a
// textual CSS value is produced. Percentages embed at 4 decimal places (the
// conventional 61.8034 form of the golden section), everything else at 6,
// which is more than any stylesheet consumer can distinguish.

const (
	// PercentPrecision is the number of decimal places for percentage values.
	PercentPrecision = 4

	// RemPrecision is the number of decimal places for root-relative lengths.
	RemPrecision = 6

	// LineHeightPrecision is the number of decimal places for unitless
	// line-height multipliers.
	LineHeightPrecision = 6
)

// RoundDecimals rounds v to the requested number of decimal places, half up.
func RoundDecimals(v float64, precision int) float64 {
	multiplier := math.Pow(10, float64(precision))
	return math.Round(v*multiplier) / multiplier
}

// FormatPercent renders v as a fixed-point CSS percentage, e.g. "61.8034%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(RoundDecimals(v, PercentPrecision), 'f', PercentPrecision, 64) + "%"
}

// FormatRem renders v as a root-relative CSS length with trailing zeros
// trimmed, e.g. "1.618034rem" or "1rem".
func FormatRem(v float64) string {
	return strconv.FormatFloat(RoundDecimals(v, RemPrecision), 'f', -1, 64) + "rem"
}

// FormatNumber renders a unitless value (line-height, aspect term) with
// trailing zeros trimmed.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(RoundDecimals(v, LineHeightPrecision), 'f', -1, 64)
}

// FormatVh renders v as a viewport-height CSS length.
func FormatVh(v float64) string {
	return strconv.FormatFloat(RoundDecimals(v, PercentPrecision), 'f', -1, 64) + "vh"
}

// FormatMs renders a duration in whole milliseconds.
func FormatMs(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64) + "ms"
}

// FormatDeg renders an angle in degrees.
func FormatDeg(v float64) string {
	return strconv.FormatFloat(RoundDecimals(v, PercentPrecision), 'f', -1, 64) + "deg"
}
