package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Labels used for the taxable flag in the JSON archives
const (
	TaxLabel   = "TAX"
	NoTaxLabel = "NO TAX"
)

// CatalogItem represents a single item record in a category archive
type CatalogItem struct {
	Name      string          `json:"name"`
	SKU       string          `json:"skuNum"`
	BasePrice decimal.Decimal `json:"price"`
	Taxable   bool            `json:"taxable"`
	FullPrice decimal.Decimal `json:"fullPrice"` // BasePrice with tax applied, 2 decimal places
}

// catalogItemJSON mirrors the archive layout, field order included
type catalogItemJSON struct {
	Name      string          `json:"name"`
	BasePrice amount          `json:"price"`
	SKU       string          `json:"skuNum"`
	Taxable   json.RawMessage `json:"taxable"`
	FullPrice amount          `json:"fullPrice"`
}

// TaxableLabel returns "TAX" or "NO TAX"
func (i CatalogItem) TaxableLabel() string {
	if i.Taxable {
		return TaxLabel
	}
	return NoTaxLabel
}

// MarshalJSON writes the item in the archive layout
func (i CatalogItem) MarshalJSON() ([]byte, error) {
	label, err := json.Marshal(i.TaxableLabel())
	if err != nil {
		return nil, err
	}
	return json.Marshal(catalogItemJSON{
		Name:      i.Name,
		BasePrice: amount(i.BasePrice),
		SKU:       i.SKU,
		Taxable:   label,
		FullPrice: amount(i.FullPrice),
	})
}

// UnmarshalJSON accepts "TAX"/"NO TAX" labels as well as plain booleans for taxable.
// Prices may be numbers or quoted strings.
func (i *CatalogItem) UnmarshalJSON(data []byte) error {
	var raw catalogItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	taxable, err := parseTaxable(raw.Taxable)
	if err != nil {
		return fmt.Errorf("item %q: %w", raw.SKU, err)
	}

	*i = CatalogItem{
		Name:      raw.Name,
		SKU:       raw.SKU,
		BasePrice: decimal.Decimal(raw.BasePrice),
		Taxable:   taxable,
		FullPrice: decimal.Decimal(raw.FullPrice),
	}
	return nil
}

func parseTaxable(raw json.RawMessage) (bool, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}

	var flag bool
	if err := json.Unmarshal(raw, &flag); err == nil {
		return flag, nil
	}

	var label string
	if err := json.Unmarshal(raw, &label); err != nil {
		return false, fmt.Errorf("invalid taxable value %s", string(raw))
	}

	switch strings.ToUpper(strings.TrimSpace(label)) {
	case TaxLabel:
		return true, nil
	case NoTaxLabel, "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid taxable label %q", label)
	}
}
