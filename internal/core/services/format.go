package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with comma-grouped thousands
// and the requested number of decimal places. The rendered document uses
// zero places for individual line amounts and two for totals.
func FormatAmount(amount decimal.Decimal, places int32) string {
	raw := amount.StringFixed(places)

	negative := strings.HasPrefix(raw, "-")
	if negative {
		raw = raw[1:]
	}

	intPart := raw
	decPart := ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		intPart, decPart = raw[:i], raw[i:]
	}

	grouped := groupThousands(intPart)
	if negative {
		return "-" + grouped + decPart
	}
	return grouped + decPart
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}
