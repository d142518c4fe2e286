package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogItemUnmarshalArchiveFormat(t *testing.T) {
	data := []byte(`[
  {"name": "Cough Drops", "price": 3.49, "skuNum": "012345678905", "taxable": "TAX", "fullPrice": 3.8},
  {"name": "Granola Bar", "price": "1.25", "skuNum": "098765432109", "taxable": "NO TAX", "fullPrice": 1.25},
  {"name": "Bandages", "price": 4, "skuNum": "011111111111", "taxable": true, "fullPrice": 4.36}
]`)

	var items []CatalogItem
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 3)

	assert.Equal(t, "Cough Drops", items[0].Name)
	assert.Equal(t, "012345678905", items[0].SKU)
	assert.True(t, items[0].Taxable)
	assert.True(t, items[0].BasePrice.Equal(decimal.RequireFromString("3.49")))
	assert.True(t, items[0].FullPrice.Equal(decimal.RequireFromString("3.80")))

	assert.False(t, items[1].Taxable)
	assert.True(t, items[1].BasePrice.Equal(decimal.RequireFromString("1.25")), "quoted prices are accepted")

	assert.True(t, items[2].Taxable)
}

func TestCatalogItemUnmarshalRejectsUnknownTaxLabel(t *testing.T) {
	var item CatalogItem
	err := json.Unmarshal([]byte(`{"name":"x","skuNum":"1","price":1,"taxable":"MAYBE","fullPrice":1}`), &item)
	assert.Error(t, err)
}

func TestCatalogItemMarshalWritesLabelsAndNumbers(t *testing.T) {
	item := CatalogItem{
		Name:      "Sparkling Water",
		SKU:       "012000001234",
		BasePrice: decimal.RequireFromString("1.99"),
		Taxable:   false,
		FullPrice: decimal.RequireFromString("1.99"),
	}

	out, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Sparkling Water","price":1.99,"skuNum":"012000001234","taxable":"NO TAX","fullPrice":1.99}`, string(out))

	item.Taxable = true
	out, err = json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"taxable":"TAX"`)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" FOOD ")
	require.NoError(t, err)
	assert.Equal(t, CategoryFood, c)
	assert.Equal(t, "Food", c.Title())
	assert.Equal(t, "OTC", CategoryOTC.Title())

	_, err = ParseCategory("toys")
	assert.Error(t, err)
}

func TestBasketTotal(t *testing.T) {
	b := Basket{Items: []CatalogItem{
		{FullPrice: decimal.RequireFromString("2.00")},
		{FullPrice: decimal.RequireFromString("3.50")},
	}}
	assert.Equal(t, "5.50", b.Total().StringFixed(2))
	assert.True(t, Basket{}.Total().IsZero())
}

func TestTransactionSummaryAndFilter(t *testing.T) {
	created := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	tx := Transaction{
		ID:       uuid.New(),
		Category: CategoryOTC,
		Basket: Basket{
			Items:     []CatalogItem{{FullPrice: decimal.RequireFromString("4.25")}, {FullPrice: decimal.RequireFromString("3.80")}},
			Target:    decimal.RequireFromString("8.50"),
			Remainder: decimal.RequireFromString("0.45"),
		},
		CreatedAt: created,
	}

	s := tx.Summary()
	assert.Equal(t, tx.ID, s.ID)
	assert.Equal(t, 2, s.ItemCount)
	assert.Equal(t, "8.05", s.Total.StringFixed(2))

	assert.True(t, TransactionFilter{}.Matches(s))
	assert.True(t, TransactionFilter{Category: CategoryOTC, From: created, To: created}.Matches(s))
	assert.False(t, TransactionFilter{Category: CategoryFood}.Matches(s))
	assert.False(t, TransactionFilter{From: created.Add(time.Second)}.Matches(s))
	assert.False(t, TransactionFilter{To: created.Add(-time.Second)}.Matches(s))
}

func TestMoneyFieldsMarshalAsNumbersWithoutGlobalSetting(t *testing.T) {
	assert.False(t, decimal.MarshalJSONWithoutQuotes)

	created := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	tx := Transaction{
		ID:       uuid.MustParse("7b1d4b52-54a7-4c1c-a8f4-0b5a6e1d2c3f"),
		Category: CategoryFood,
		Basket: Basket{
			Items:     []CatalogItem{{Name: "Water", SKU: "012000001291", BasePrice: decimal.RequireFromString("1.49"), FullPrice: decimal.RequireFromString("1.49")}},
			Target:    decimal.RequireFromString("2.00"),
			Remainder: decimal.RequireFromString("0.51"),
			Attempts:  3,
		},
		CreatedAt: created,
	}

	out, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"target":2,`)
	assert.Contains(t, string(out), `"remainder":0.51,`)
	assert.Contains(t, string(out), `"price":1.49`)

	var back Transaction
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Basket.Remainder.Equal(tx.Basket.Remainder))
	assert.Equal(t, 3, back.Basket.Attempts)
	require.Len(t, back.Basket.Items, 1)
	assert.Equal(t, "Water", back.Basket.Items[0].Name)

	summary, err := json.Marshal(tx.Summary())
	require.NoError(t, err)
	assert.Contains(t, string(summary), `"total":1.49`)

	var decoded TransactionSummary
	require.NoError(t, json.Unmarshal(summary, &decoded))
	assert.True(t, decoded.Total.Equal(decimal.RequireFromString("1.49")))
	assert.Equal(t, 1, decoded.ItemCount)

	// quoted amounts are still accepted
	var quoted Basket
	require.NoError(t, json.Unmarshal([]byte(`{"items":[],"target":"5.00","remainder":"0.10","attempts":1}`), &quoted))
	assert.True(t, quoted.Target.Equal(decimal.RequireFromString("5")))
}
