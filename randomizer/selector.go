// Package randomizer assembles random baskets of catalog items whose combined
// full price approaches a target transaction total.
//
// Items are drawn with replacement. Each draw is weighted by price over the items
// cheaper than the amount still left to fill, so cheap items are picked more often
// as the remaining amount shrinks. A basket is filled until the remaining amount
// drops to the minimum threshold; SelectBestBasket re-rolls a bounded number of
// times looking for a smaller remainder.
package randomizer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"otc-randomizer/models"
)

// Defaults for the selector options
var (
	DefaultMinimumThreshold = decimal.RequireFromString("0.98")
	DefaultAcceptRemainder  = decimal.RequireFromString("0.09")
)

// DefaultMaxAttempts bounds the fill passes run by SelectBestBasket
const DefaultMaxAttempts = 6

var (
	// ErrEmptyCatalog is returned when the catalog has no items
	ErrEmptyCatalog = errors.New("randomizer: catalog has no items")

	// ErrInvalidPrice matches every *InvalidPriceError
	ErrInvalidPrice = errors.New("randomizer: item full price must be positive")
)

// InvalidPriceError reports a catalog item whose full price is zero or negative.
// Such an item would never shrink the remaining amount.
type InvalidPriceError struct {
	SKU       string
	FullPrice decimal.Decimal
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("randomizer: item %s has non-positive full price %s", e.SKU, e.FullPrice.String())
}

// Is makes errors.Is(err, ErrInvalidPrice) hold
func (e *InvalidPriceError) Is(target error) bool {
	return target == ErrInvalidPrice
}

// Option configures a Selector
type Option func(*Selector)

// WithMinimumThreshold sets the amount at or below which a fill pass stops
func WithMinimumThreshold(threshold decimal.Decimal) Option {
	return func(s *Selector) {
		s.minimum = threshold
	}
}

// WithAcceptRemainder sets the remainder below which SelectBestBasket stops re-rolling.
// It defaults to DefaultAcceptRemainder (0.09), not the minimum threshold: a fill
// pass always ends at or below the minimum, so accepting at the minimum would stop
// after the first pass whenever its remainder is strictly below it.
func WithAcceptRemainder(remainder decimal.Decimal) Option {
	return func(s *Selector) {
		s.accept = remainder
	}
}

// WithMaxAttempts sets the total number of fill passes SelectBestBasket may run
func WithMaxAttempts(n int) Option {
	return func(s *Selector) {
		s.maxAttempts = n
	}
}

// Selector picks baskets from a catalog. It is safe for concurrent use only when
// its Source is.
type Selector struct {
	src         Source
	minimum     decimal.Decimal
	accept      decimal.Decimal
	maxAttempts int
}

// NewSelector creates a Selector drawing from src (GlobalSource when nil)
func NewSelector(src Source, opts ...Option) *Selector {
	if src == nil {
		src = GlobalSource()
	}
	s := &Selector{
		src:         src,
		minimum:     DefaultMinimumThreshold,
		accept:      DefaultAcceptRemainder,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxAttempts < 1 {
		s.maxAttempts = 1
	}
	return s
}

// AcceptRemainder returns the remainder that ends re-rolling early
func (s *Selector) AcceptRemainder() decimal.Decimal {
	return s.accept
}

// MinimumThreshold returns the configured fill threshold
func (s *Selector) MinimumThreshold() decimal.Decimal {
	return s.minimum
}

// Validate checks the catalog preconditions: at least one item, all full prices positive
func Validate(catalog []models.CatalogItem) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	for _, item := range catalog {
		if !item.FullPrice.IsPositive() {
			return &InvalidPriceError{SKU: item.SKU, FullPrice: item.FullPrice}
		}
	}
	return nil
}

// SelectBasket runs a single fill pass for target over catalog.
// A target at or below the minimum threshold yields an empty basket.
func (s *Selector) SelectBasket(target decimal.Decimal, catalog []models.CatalogItem) (models.Basket, error) {
	if err := Validate(catalog); err != nil {
		return models.Basket{}, err
	}
	return s.fill(target, sortByFullPrice(catalog)), nil
}

// SelectBestBasket runs up to maxAttempts fill passes and keeps the basket with the
// smallest remainder. It stops early once the best remainder is below the accept
// threshold. The returned basket's Attempts is the number of passes run.
func (s *Selector) SelectBestBasket(target decimal.Decimal, catalog []models.CatalogItem) (models.Basket, error) {
	if err := Validate(catalog); err != nil {
		return models.Basket{}, err
	}

	sorted := sortByFullPrice(catalog)
	best := s.fill(target, sorted)
	if len(best.Items) == 0 {
		// nothing to draw, every re-roll would be identical
		return best, nil
	}

	attempts := 1
	for attempts < s.maxAttempts {
		if best.Remainder.LessThan(s.accept) {
			break
		}
		candidate := s.fill(target, sorted)
		attempts++
		if candidate.Remainder.LessThan(best.Remainder) {
			best = candidate
		}
	}

	best.Attempts = attempts
	return best, nil
}

// fill picks items until the remaining amount is at or below the minimum threshold
func (s *Selector) fill(target decimal.Decimal, sorted []models.CatalogItem) models.Basket {
	basket := models.Basket{
		Items:     []models.CatalogItem{},
		Target:    target,
		Remainder: target,
		Attempts:  1,
	}

	for basket.Remainder.GreaterThan(s.minimum) {
		item := sorted[s.pickWeightedIndex(basket.Remainder, sorted)]
		basket.Items = append(basket.Items, item)
		basket.Remainder = basket.Remainder.Sub(item.FullPrice)
	}
	return basket
}

// pickWeightedIndex draws an index into sorted, weighted by price over the items
// priced below limit.
//
// When no item is below limit the weight sum is zero, the draw is zero and the
// cheapest item is returned even though it overshoots limit.
func (s *Selector) pickWeightedIndex(limit decimal.Decimal, sorted []models.CatalogItem) int {
	weightSum := decimal.Zero
	for _, item := range sorted {
		if !item.FullPrice.LessThan(limit) {
			break
		}
		weightSum = weightSum.Add(item.FullPrice)
	}

	r := weightSum.Mul(decimal.NewFromFloat(s.src.Float64()))
	for i, item := range sorted {
		if !r.GreaterThan(item.FullPrice) {
			return i
		}
		r = r.Sub(item.FullPrice)
	}
	return len(sorted) - 1
}

// sortByFullPrice returns a copy of catalog stable-sorted by full price ascending
func sortByFullPrice(catalog []models.CatalogItem) []models.CatalogItem {
	sorted := make([]models.CatalogItem, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FullPrice.LessThan(sorted[j].FullPrice)
	})
	return sorted
}
