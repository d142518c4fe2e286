package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats an amount as a string like "$1,234.50".
// Negative amounts are rendered as "-$3.00".
func FormatUSD(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	// digits + separators + sign + $ + cents
	b.Grow(len(whole) + len(whole)/3 + 5)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	// Insert separators from the left.
	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(cents)

	return b.String()
}

// ParseMonetary parses user input such as "1,234.5", "+3" or ".99" into a decimal.
// Input should be checked with ValidMonetary first.
func ParseMonetary(input string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(input), ",", "")
	cleaned = strings.TrimPrefix(cleaned, "+")
	if strings.HasPrefix(cleaned, ".") {
		cleaned = "0" + cleaned
	}
	if strings.HasSuffix(cleaned, ".") {
		cleaned += "0"
	}
	return decimal.NewFromString(cleaned)
}
