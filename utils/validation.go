package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input limits used by the item prompts
const (
	MinNameLength = 4
	MaxNameLength = 29
	MinSKULength  = 10
	MaxSKULength  = 12
)

// SKUs become barcode file names: letters, digits and dashes only
var skuPattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)

// Accepts "12", "1,234.56", "+3.5", ".99" and "12." but not negatives or 3+ decimals
var monetaryPattern = regexp.MustCompile(`^[+]?(?:\d{1,3}(,\d{3})*(?:\.\d{0,2})?|\.\d{1,2}|\d{1,3}(,\d{3})*|\d{1,3}(,\d{3})*\.\d{0,2})$`)

// ValidName checks the item name length
func ValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= MinNameLength && n <= MaxNameLength
}

// ValidSKU checks the sku length and characters
func ValidSKU(sku string) bool {
	n := len(sku)
	return n >= MinSKULength && n <= MaxSKULength && skuPattern.MatchString(sku)
}

// ValidYesNo accepts y/n in either case
func ValidYesNo(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "n":
		return true
	}
	return false
}

// IsYes reports whether answer is a y/Y
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// ValidMonetary checks that input is a non-negative amount with at most two decimals
func ValidMonetary(input string) bool {
	return monetaryPattern.MatchString(input)
}
