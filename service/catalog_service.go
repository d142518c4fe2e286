package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"otc-randomizer/logger"
	"otc-randomizer/models"
	"otc-randomizer/pricing"
	"otc-randomizer/repository"
	"otc-randomizer/utils"
)

// skuMatchLength is how many leading SKU characters identify an item.
// Scanned UPC-A and EAN-13 codes differ only in their check digits past it.
const skuMatchLength = 10

var (
	// ErrNoChanges is returned by UpdateItem when the update sets nothing
	ErrNoChanges = errors.New("no changes requested")

	// ErrInvalidItem wraps every input validation failure
	ErrInvalidItem = errors.New("invalid item")
)

// NewItemInput holds the fields of an item to create
type NewItemInput struct {
	Name      string
	SKU       string
	BasePrice decimal.Decimal
	Taxable   bool
}

// ItemUpdate holds the optional changes to an item. Nil fields are left alone.
type ItemUpdate struct {
	Name          *string
	BasePrice     *decimal.Decimal
	ToggleTaxable bool
}

// IsEmpty reports whether the update changes nothing
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.BasePrice == nil && !u.ToggleTaxable
}

// CatalogService handles business logic for item records
type CatalogService struct {
	repo       repository.CatalogRepositoryInterface
	calculator *pricing.Calculator
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.CatalogRepositoryInterface, calculator *pricing.Calculator) *CatalogService {
	if calculator == nil {
		calculator = pricing.NewCalculator(pricing.DefaultTaxRate)
	}
	return &CatalogService{
		repo:       repo,
		calculator: calculator,
	}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// CreateItem validates input, prices the item and appends it to category.
// A SKU already present in any category is rejected.
func (s *CatalogService) CreateItem(ctx context.Context, category models.Category, input NewItemInput) (*models.CatalogItem, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidItem, category)
	}
	input.Name = strings.TrimSpace(input.Name)
	input.SKU = strings.TrimSpace(input.SKU)
	if err := validateItem(input.Name, input.SKU, input.BasePrice); err != nil {
		return nil, err
	}

	existingCategory, existing, err := s.FindItem(ctx, input.SKU)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s is already %q in %s", repository.ErrDuplicateSKU, input.SKU, existing.Name, existingCategory)
	case !errors.Is(err, repository.ErrItemNotFound):
		return nil, err
	}

	item := s.calculator.Reprice(models.CatalogItem{
		Name:      input.Name,
		SKU:       input.SKU,
		BasePrice: input.BasePrice,
		Taxable:   input.Taxable,
	})
	if err := s.repo.Append(ctx, category, item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	logger.Info("📦 Item created",
		zap.String("category", string(category)),
		zap.String("sku", item.SKU),
		zap.String("fullPrice", item.FullPrice.StringFixed(2)))
	return &item, nil
}

// FindItem looks the SKU up in food, then otc. Only the first ten characters are compared.
func (s *CatalogService) FindItem(ctx context.Context, sku string) (models.Category, *models.CatalogItem, error) {
	key := skuKey(strings.TrimSpace(sku))
	if key == "" {
		return "", nil, fmt.Errorf("%w: empty SKU", ErrInvalidItem)
	}

	for _, category := range models.Categories {
		items, err := s.repo.List(ctx, category)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load %s catalog: %w", category, err)
		}
		for i := range items {
			if skuKey(items[i].SKU) == key {
				item := items[i]
				return category, &item, nil
			}
		}
	}
	return "", nil, fmt.Errorf("%w: %s", repository.ErrItemNotFound, sku)
}

// UpdateItem applies update to the item found by sku and reprices it
func (s *CatalogService) UpdateItem(ctx context.Context, sku string, update ItemUpdate) (*models.CatalogItem, error) {
	if update.IsEmpty() {
		return nil, ErrNoChanges
	}

	category, current, err := s.FindItem(ctx, sku)
	if err != nil {
		return nil, err
	}

	updated := *current
	if update.Name != nil {
		updated.Name = strings.TrimSpace(*update.Name)
	}
	if update.BasePrice != nil {
		updated.BasePrice = *update.BasePrice
	}
	if update.ToggleTaxable {
		updated.Taxable = !updated.Taxable
	}
	if err := validateItem(updated.Name, updated.SKU, updated.BasePrice); err != nil {
		return nil, err
	}
	updated = s.calculator.Reprice(updated)

	if err := s.repo.Update(ctx, category, current.SKU, updated); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	logger.Info("✏️  Item updated",
		zap.String("category", string(category)),
		zap.String("sku", updated.SKU),
		zap.String("fullPrice", updated.FullPrice.StringFixed(2)))
	return &updated, nil
}

// DeleteItem removes the item found by sku and returns it
func (s *CatalogService) DeleteItem(ctx context.Context, sku string) (*models.CatalogItem, error) {
	category, item, err := s.FindItem(ctx, sku)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, category, item.SKU); err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	logger.Info("🗑️  Item deleted", zap.String("category", string(category)), zap.String("sku", item.SKU))
	return item, nil
}

// ListItems returns the category items in stored order
func (s *CatalogService) ListItems(ctx context.Context, category models.Category) ([]models.CatalogItem, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidItem, category)
	}
	items, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", category, err)
	}
	return items, nil
}

// RefreshCatalog sorts the category by full price, most expensive first, and saves it
func (s *CatalogService) RefreshCatalog(ctx context.Context, category models.Category) ([]models.CatalogItem, error) {
	items, err := s.ListItems(ctx, category)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].FullPrice.GreaterThan(items[j].FullPrice)
	})

	if err := s.repo.ReplaceAll(ctx, category, items); err != nil {
		return nil, fmt.Errorf("failed to save %s catalog: %w", category, err)
	}

	logger.Info("🔄 Catalog refreshed", zap.String("category", string(category)), zap.Int("items", len(items)))
	return items, nil
}

func validateItem(name, sku string, basePrice decimal.Decimal) error {
	if !utils.ValidName(name) {
		return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidItem, utils.MinNameLength, utils.MaxNameLength)
	}
	if !utils.ValidSKU(sku) {
		return fmt.Errorf("%w: SKU must be %d-%d letters, digits or dashes", ErrInvalidItem, utils.MinSKULength, utils.MaxSKULength)
	}
	if !pricing.NormalizeBase(basePrice).IsPositive() {
		return fmt.Errorf("%w: price must be at least $0.01", ErrInvalidItem)
	}
	return nil
}

func skuKey(sku string) string {
	if len(sku) > skuMatchLength {
		return sku[:skuMatchLength]
	}
	return sku
}
