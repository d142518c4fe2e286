package randomizer_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otc-randomizer/models"
	"otc-randomizer/randomizer"
)

// scriptedSource replays draws in order, cycling when exhausted
type scriptedSource struct {
	draws []float64
	calls int
}

func (s *scriptedSource) Float64() float64 {
	v := s.draws[s.calls%len(s.draws)]
	s.calls++
	return v
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(sku, price string) models.CatalogItem {
	return models.CatalogItem{
		Name:      "Item " + sku,
		SKU:       sku,
		BasePrice: d(price),
		FullPrice: d(price),
	}
}

func skus(items []models.CatalogItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.SKU)
	}
	return out
}

func assertRemainderConsistent(t *testing.T, b models.Basket) {
	t.Helper()
	assert.True(t, b.Remainder.Equal(b.Target.Sub(b.Total())),
		"remainder %s != target %s - total %s", b.Remainder, b.Target, b.Total())
}

func threeItemCatalog() []models.CatalogItem {
	// deliberately unsorted
	return []models.CatalogItem{
		item("TEN", "10.00"),
		item("TWO", "2.00"),
		item("THREE50", "3.50"),
	}
}

func TestSelectBasketGolden(t *testing.T) {
	src := &scriptedSource{draws: []float64{0.5, 0.9, 0.1}}
	sel := randomizer.NewSelector(src)

	basket, err := sel.SelectBasket(d("15.00"), threeItemCatalog())
	require.NoError(t, err)

	// 15.00: weights 15.50, r=7.75 -> TEN, left 5.00
	// 5.00: weights 5.50, r=4.95 -> THREE50, left 1.50
	// 1.50: nothing cheaper, r=0 -> TWO, left -0.50
	assert.Equal(t, []string{"TEN", "THREE50", "TWO"}, skus(basket.Items))
	assert.Equal(t, "-0.50", basket.Remainder.StringFixed(2))
	assert.Equal(t, 3, src.calls)
	assert.Equal(t, 1, basket.Attempts)
	assertRemainderConsistent(t, basket)
}

func TestSelectBasketTargetBelowThreshold(t *testing.T) {
	src := &scriptedSource{draws: []float64{0.5}}
	sel := randomizer.NewSelector(src)

	basket, err := sel.SelectBasket(d("0.50"), threeItemCatalog())
	require.NoError(t, err)
	assert.Empty(t, basket.Items)
	assert.Equal(t, "0.50", basket.Remainder.StringFixed(2))
	assert.Zero(t, src.calls)

	best, err := sel.SelectBestBasket(d("0.98"), threeItemCatalog())
	require.NoError(t, err)
	assert.Empty(t, best.Items)
	assert.Equal(t, "0.98", best.Remainder.StringFixed(2))
	assert.Equal(t, 1, best.Attempts)
}

func TestSelectBasketSingleItemOvershoots(t *testing.T) {
	sel := randomizer.NewSelector(randomizer.NewSeededSource(7))

	basket, err := sel.SelectBasket(d("12.00"), []models.CatalogItem{item("FIVE", "5.00")})
	require.NoError(t, err)

	// 12.00 -> 7.00 -> 2.00; at 2.00 nothing is cheaper so the 5.00 item is
	// still taken and the remainder goes negative.
	assert.Equal(t, []string{"FIVE", "FIVE", "FIVE"}, skus(basket.Items))
	assert.Equal(t, "-3.00", basket.Remainder.StringFixed(2))
	assertRemainderConsistent(t, basket)
}

func TestSelectBasketStableOnTies(t *testing.T) {
	catalog := []models.CatalogItem{
		item("A", "2.00"),
		item("B", "1.00"),
		item("C", "2.00"),
	}
	// sorted: B, A, C. 3.00: weights 5.00, r=1.50 -> A (not C)
	// 1.00: nothing cheaper -> B
	src := &scriptedSource{draws: []float64{0.3, 0.0}}
	sel := randomizer.NewSelector(src)

	basket, err := sel.SelectBasket(d("3.00"), catalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, skus(basket.Items))
	assert.True(t, basket.Remainder.IsZero())

	assert.Equal(t, []string{"A", "B", "C"}, skus(catalog), "catalog must not be reordered")
}

func TestSelectBasketErrors(t *testing.T) {
	sel := randomizer.NewSelector(randomizer.NewSeededSource(1))

	_, err := sel.SelectBasket(d("10.00"), nil)
	assert.ErrorIs(t, err, randomizer.ErrEmptyCatalog)

	_, err = sel.SelectBestBasket(d("0.10"), []models.CatalogItem{})
	assert.ErrorIs(t, err, randomizer.ErrEmptyCatalog, "empty catalog fails even below the threshold")

	_, err = sel.SelectBasket(d("10.00"), []models.CatalogItem{item("OK", "1.00"), item("FREE", "0")})
	require.ErrorIs(t, err, randomizer.ErrInvalidPrice)
	var priceErr *randomizer.InvalidPriceError
	require.ErrorAs(t, err, &priceErr)
	assert.Equal(t, "FREE", priceErr.SKU)

	_, err = sel.SelectBestBasket(d("10.00"), []models.CatalogItem{item("NEG", "-1.00")})
	assert.ErrorIs(t, err, randomizer.ErrInvalidPrice)
}

func TestSelectBestBasketAdoptsBetterCandidate(t *testing.T) {
	catalog := []models.CatalogItem{item("DOLLAR", "1.00"), item("NINETYFIVE", "0.95")}
	// first pass:  0.95, 0.95 -> remainder 0.10
	// second pass: 1.00, 0.95 -> remainder 0.05, below accept threshold
	src := &scriptedSource{draws: []float64{0, 0, 0.99, 0.99}}
	sel := randomizer.NewSelector(src)

	best, err := sel.SelectBestBasket(d("2.00"), catalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"DOLLAR", "NINETYFIVE"}, skus(best.Items))
	assert.Equal(t, "0.05", best.Remainder.StringFixed(2))
	assert.Equal(t, 2, best.Attempts)
	assert.Equal(t, 4, src.calls)
	assertRemainderConsistent(t, best)
}

func TestSelectBestBasketStopsWhenGoodEnough(t *testing.T) {
	src := &scriptedSource{draws: []float64{0.4}}
	sel := randomizer.NewSelector(src)

	best, err := sel.SelectBestBasket(d("2.00"), []models.CatalogItem{item("DOLLAR", "1.00")})
	require.NoError(t, err)
	assert.True(t, best.Remainder.IsZero())
	assert.Equal(t, 1, best.Attempts)
	assert.Equal(t, 2, src.calls)
}

func TestSelectBestBasketBoundedAttempts(t *testing.T) {
	catalog := []models.CatalogItem{item("DOLLAR", "1.00"), item("NINETYFIVE", "0.95")}
	// every pass lands on 0.10, which never beats itself
	src := &scriptedSource{draws: []float64{0}}

	best, err := randomizer.NewSelector(src).SelectBestBasket(d("2.00"), catalog)
	require.NoError(t, err)
	assert.Equal(t, randomizer.DefaultMaxAttempts, best.Attempts)
	assert.Equal(t, 2*randomizer.DefaultMaxAttempts, src.calls)
	assert.Equal(t, "0.10", best.Remainder.StringFixed(2))

	src = &scriptedSource{draws: []float64{0}}
	best, err = randomizer.NewSelector(src, randomizer.WithMaxAttempts(2)).SelectBestBasket(d("2.00"), catalog)
	require.NoError(t, err)
	assert.Equal(t, 2, best.Attempts)

	src = &scriptedSource{draws: []float64{0}}
	best, err = randomizer.NewSelector(src, randomizer.WithAcceptRemainder(d("0.11"))).SelectBestBasket(d("2.00"), catalog)
	require.NoError(t, err)
	assert.Equal(t, 1, best.Attempts)
}

func TestAcceptRemainderIsSeparateFromMinimumThreshold(t *testing.T) {
	sel := randomizer.NewSelector(&scriptedSource{draws: []float64{0}})
	assert.Equal(t, "0.09", sel.AcceptRemainder().StringFixed(2))
	assert.Equal(t, "0.98", sel.MinimumThreshold().StringFixed(2))

	catalog := []models.CatalogItem{item("DOLLAR", "1.00"), item("NINETYFIVE", "0.95")}

	// 0.10 is below the minimum but above the accept remainder, so it re-rolls
	best, err := sel.SelectBestBasket(d("2.00"), catalog)
	require.NoError(t, err)
	assert.Equal(t, randomizer.DefaultMaxAttempts, best.Attempts)

	// accepting at the minimum threshold stops after the first pass
	src := &scriptedSource{draws: []float64{0}}
	best, err = randomizer.NewSelector(src, randomizer.WithAcceptRemainder(randomizer.DefaultMinimumThreshold)).
		SelectBestBasket(d("2.00"), catalog)
	require.NoError(t, err)
	assert.Equal(t, 1, best.Attempts)
}

func TestWithMinimumThreshold(t *testing.T) {
	src := &scriptedSource{draws: []float64{0}}
	sel := randomizer.NewSelector(src, randomizer.WithMinimumThreshold(d("0")))
	assert.True(t, sel.MinimumThreshold().IsZero())

	basket, err := sel.SelectBasket(d("3.00"), []models.CatalogItem{item("DOLLAR", "1.00")})
	require.NoError(t, err)
	assert.Len(t, basket.Items, 3)
	assert.True(t, basket.Remainder.IsZero())
}

func TestSelectDeterministicForSeed(t *testing.T) {
	catalog := sampleCatalog()

	first, err := randomizer.NewSelector(randomizer.NewSeededSource(42)).SelectBestBasket(d("37.25"), catalog)
	require.NoError(t, err)
	second, err := randomizer.NewSelector(randomizer.NewSeededSource(42)).SelectBestBasket(d("37.25"), catalog)
	require.NoError(t, err)

	assert.Equal(t, skus(first.Items), skus(second.Items))
	assert.True(t, first.Remainder.Equal(second.Remainder))
	assert.Equal(t, first.Attempts, second.Attempts)
}

func TestSelectProperties(t *testing.T) {
	catalog := sampleCatalog()
	targets := []string{"0.99", "1.50", "12.00", "25.00", "60.40", "150.00"}

	for seed := uint64(1); seed <= 40; seed++ {
		for _, target := range targets {
			t.Run(fmt.Sprintf("seed%d/%s", seed, target), func(t *testing.T) {
				single, err := randomizer.NewSelector(randomizer.NewSeededSource(seed)).SelectBasket(d(target), catalog)
				require.NoError(t, err)
				assertRemainderConsistent(t, single)
				assert.True(t, single.Remainder.LessThan(d(target)))
				assert.False(t, single.Remainder.GreaterThan(randomizer.DefaultMinimumThreshold))

				best, err := randomizer.NewSelector(randomizer.NewSeededSource(seed)).SelectBestBasket(d(target), catalog)
				require.NoError(t, err)
				assertRemainderConsistent(t, best)
				assert.False(t, best.Remainder.GreaterThan(single.Remainder),
					"best %s worse than first pass %s", best.Remainder, single.Remainder)
				assert.LessOrEqual(t, best.Attempts, randomizer.DefaultMaxAttempts)
			})
		}
	}
}

func TestLockedSourceIsUsable(t *testing.T) {
	src := randomizer.NewLockedSource(randomizer.NewSeededSource(3))
	for i := 0; i < 100; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	global := randomizer.GlobalSource()
	v := global.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func sampleCatalog() []models.CatalogItem {
	return []models.CatalogItem{
		item("GUM", "0.99"),
		item("WATER", "1.49"),
		item("CHIPS", "2.18"),
		item("BATTERY", "7.61"),
		item("ASPIRIN", "5.43"),
		item("LOTION", "12.00"),
		item("VITAMINS", "19.59"),
		item("CANDY", "1.25"),
	}
}
