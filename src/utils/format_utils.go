package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount in Indian rupee format with the
// Indian digit grouping (last 3 digits, then groups of 2), always with two
// decimal places: 1234567.89 becomes "₹12,34,567.89".
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed
	decPart := ".00"
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart = fixed[:i]
		decPart = fixed[i:]
	}

	formatted := groupIndian(intPart) + decPart
	if amount.IsNegative() {
		return "-₹" + formatted
	}
	return "₹" + formatted
}

// groupIndian inserts Indian-system separators into a plain digit string:
// the last 3 digits stand alone, everything before them groups in pairs.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	result := digits[len(digits)-3:]
	remaining := digits[:len(digits)-3]

	for len(remaining) > 0 {
		if len(remaining) > 2 {
			result = remaining[len(remaining)-2:] + "," + result
			remaining = remaining[:len(remaining)-2]
		} else {
			result = remaining + "," + result
			remaining = ""
		}
	}
	return result
}
