package randomizer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"otc-randomizer/models"
)

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func priced(prices ...string) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(prices))
	for _, p := range prices {
		items = append(items, models.CatalogItem{SKU: p, FullPrice: decimal.RequireFromString(p)})
	}
	return items
}

func TestPickWeightedIndex(t *testing.T) {
	sorted := priced("2.00", "3.50", "10.00")
	limit := decimal.RequireFromString("5.00")

	tests := []struct {
		name string
		draw float64
		want int
	}{
		// eligible weights: 2.00 + 3.50 = 5.50
		{"zero draw picks cheapest", 0, 0},
		{"draw inside first weight", 0.3, 0},  // r = 1.65
		{"boundary stays on item", 0.3636, 0}, // r = 1.9998
		{"draw inside second weight", 0.5, 1}, // r = 2.75
		{"top of range", 0.999, 1},            // r = 5.4945
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Selector{src: fixedSource(tt.draw)}
			assert.Equal(t, tt.want, s.pickWeightedIndex(limit, sorted))
		})
	}
}

func TestPickWeightedIndexNothingEligible(t *testing.T) {
	s := &Selector{src: fixedSource(0.75)}
	assert.Equal(t, 0, s.pickWeightedIndex(decimal.RequireFromString("1.50"), priced("2.00", "3.50")))
}

func TestPickWeightedIndexExhaustedWalk(t *testing.T) {
	// a source outside [0,1) pushes r past every weight
	s := &Selector{src: fixedSource(2)}
	assert.Equal(t, 2, s.pickWeightedIndex(decimal.RequireFromString("100"), priced("1.00", "2.00", "3.00")))
}

func TestSortByFullPriceCopies(t *testing.T) {
	catalog := priced("3.00", "1.00", "2.00")
	sorted := sortByFullPrice(catalog)
	assert.Equal(t, "1.00", sorted[0].SKU)
	assert.Equal(t, "3.00", sorted[2].SKU)
	assert.Equal(t, "3.00", catalog[0].SKU)
}
