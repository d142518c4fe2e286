package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otc-randomizer/models"
)

func testItem(sku, name, price string) models.CatalogItem {
	p := decimal.RequireFromString(price)
	return models.CatalogItem{Name: name, SKU: sku, BasePrice: p, FullPrice: p}
}

func TestCatalogFileRepositoryMissingFileIsEmpty(t *testing.T) {
	repo := NewCatalogFileRepository(filepath.Join(t.TempDir(), "itemArchive"))

	items, err := repo.List(context.Background(), models.CategoryFood)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCatalogFileRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogFileRepository(filepath.Join(t.TempDir(), "itemArchive"))

	require.NoError(t, repo.Append(ctx, models.CategoryOTC, testItem("0123456789", "Aspirin", "5.43")))
	require.NoError(t, repo.Append(ctx, models.CategoryOTC, testItem("9876543210", "Lotion", "12.00")))

	err := repo.Append(ctx, models.CategoryOTC, testItem("0123456789", "Again", "1.00"))
	assert.ErrorIs(t, err, ErrDuplicateSKU)

	updated := testItem("0123456789", "Aspirin 200", "6.00")
	require.NoError(t, repo.Update(ctx, models.CategoryOTC, "0123456789", updated))

	items, err := repo.List(ctx, models.CategoryOTC)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Aspirin 200", items[0].Name, "update keeps position")
	assert.Equal(t, "Lotion", items[1].Name)

	assert.ErrorIs(t, repo.Update(ctx, models.CategoryOTC, "0000000000", updated), ErrItemNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, models.CategoryOTC, "0000000000"), ErrItemNotFound)

	require.NoError(t, repo.Delete(ctx, models.CategoryOTC, "0123456789"))
	items, err = repo.List(ctx, models.CategoryOTC)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "9876543210", items[0].SKU)

	food, err := repo.List(ctx, models.CategoryFood)
	require.NoError(t, err)
	assert.Empty(t, food, "categories are stored separately")
}

func TestCatalogFileRepositoryWritesArchiveFormat(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "itemArchive")
	repo := NewCatalogFileRepository(dir)

	item := testItem("012345678905", "Chips", "2.00")
	item.Taxable = true
	item.FullPrice = decimal.RequireFromString("2.18")
	require.NoError(t, repo.ReplaceAll(ctx, models.CategoryFood, []models.CatalogItem{item}))

	data, err := os.ReadFile(filepath.Join(dir, "food.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {\n    \"name\": \"Chips\"")
	assert.Contains(t, string(data), `"taxable": "TAX"`)
	assert.Contains(t, string(data), `"fullPrice": 2.18`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")

	require.NoError(t, repo.ReplaceAll(ctx, models.CategoryFood, nil))
	data, err = os.ReadFile(filepath.Join(dir, "food.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestCatalogFileRepositoryReadsExistingArchive(t *testing.T) {
	dir := t.TempDir()
	archive := `[
  {
    "name": "Gummy Bears",
    "price": 1.99,
    "skuNum": "071720539125",
    "taxable": "NO TAX",
    "fullPrice": 1.99
  }
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "food.json"), []byte(archive), 0o644))

	items, err := NewCatalogFileRepository(dir).List(context.Background(), models.CategoryFood)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "071720539125", items[0].SKU)
	assert.False(t, items[0].Taxable)
	assert.Equal(t, "1.99", items[0].FullPrice.StringFixed(2))
}

func TestCatalogFileRepositoryCorruptArchive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "otc.json"), []byte("{not json"), 0o644))

	_, err := NewCatalogFileRepository(dir).List(context.Background(), models.CategoryOTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode archive")
}

func TestCatalogFileRepositoryHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCatalogFileRepository(t.TempDir()).List(ctx, models.CategoryOTC)
	assert.ErrorIs(t, err, context.Canceled)
}
