// Package pricing computes tax-inclusive full prices for catalog items.
package pricing

import (
	"github.com/shopspring/decimal"

	"otc-randomizer/models"
)

// DefaultTaxRate is the multiplier applied to taxable items (8.875% sales tax)
var DefaultTaxRate = decimal.RequireFromString("1.08875")

// Calculator applies a tax multiplier to base prices
type Calculator struct {
	taxRate decimal.Decimal
}

// NewCalculator creates a Calculator; a non-positive taxRate falls back to DefaultTaxRate
func NewCalculator(taxRate decimal.Decimal) *Calculator {
	if !taxRate.IsPositive() {
		taxRate = DefaultTaxRate
	}
	return &Calculator{taxRate: taxRate}
}

// TaxRate returns the multiplier in use
func (c *Calculator) TaxRate() decimal.Decimal {
	return c.taxRate
}

// NormalizeBase rounds a base price to cents
func NormalizeBase(base decimal.Decimal) decimal.Decimal {
	return base.Round(2)
}

// FullPrice returns base for non-taxable items, base*taxRate rounded to cents otherwise.
// The result is never below the (cent-rounded) base price.
func (c *Calculator) FullPrice(base decimal.Decimal, taxable bool) decimal.Decimal {
	base = NormalizeBase(base)
	if !taxable {
		return base
	}
	full := base.Mul(c.taxRate).Round(2)
	if full.LessThan(base) {
		return base
	}
	return full
}

// Reprice returns item with BasePrice normalized and FullPrice recomputed
func (c *Calculator) Reprice(item models.CatalogItem) models.CatalogItem {
	item.BasePrice = NormalizeBase(item.BasePrice)
	item.FullPrice = c.FullPrice(item.BasePrice, item.Taxable)
	return item
}
