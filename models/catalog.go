package models

import (
	"fmt"
	"strings"
)

// Category names one item archive
type Category string

const (
	CategoryFood Category = "food"
	CategoryOTC  Category = "otc"
)

// Categories lists every known category in lookup order
var Categories = []Category{CategoryFood, CategoryOTC}

// ParseCategory normalizes s and checks it against the known categories
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (expected food or otc)", s)
	}
	return c, nil
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	return c == CategoryFood || c == CategoryOTC
}

// Title returns the display name used in report headings
func (c Category) Title() string {
	switch c {
	case CategoryFood:
		return "Food"
	case CategoryOTC:
		return "OTC"
	default:
		return string(c)
	}
}

func (c Category) String() string {
	return string(c)
}
