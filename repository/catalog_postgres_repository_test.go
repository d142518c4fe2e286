package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otc-randomizer/db"
	"otc-randomizer/models"
)

func TestCatalogPostgresRepository(t *testing.T) {
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	require.NoError(t, db.InitDB(ctx, connStr))
	t.Cleanup(func() { _ = db.CloseDB() })
	require.NoError(t, db.EnsureSchema(ctx))

	repo := NewCatalogPostgresRepository()
	require.NoError(t, repo.ReplaceAll(ctx, models.CategoryFood, nil))
	require.NoError(t, repo.ReplaceAll(ctx, models.CategoryOTC, nil))
	t.Cleanup(func() { _ = repo.ReplaceAll(ctx, models.CategoryFood, nil) })

	require.NoError(t, repo.Append(ctx, models.CategoryFood, testItem("1111111111", "Water", "1.49")))
	require.NoError(t, repo.Append(ctx, models.CategoryFood, testItem("2222222222", "Chips", "2.18")))
	assert.ErrorIs(t, repo.Append(ctx, models.CategoryOTC, testItem("1111111111", "Dup", "1.00")), ErrDuplicateSKU)

	require.NoError(t, repo.Update(ctx, models.CategoryFood, "1111111111", testItem("1111111111", "Spring Water", "1.59")))
	assert.ErrorIs(t, repo.Delete(ctx, models.CategoryFood, "3333333333"), ErrItemNotFound)

	items, err := repo.List(ctx, models.CategoryFood)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Spring Water", items[0].Name)
	assert.Equal(t, "1.59", items[0].BasePrice.StringFixed(2))
	assert.Equal(t, "Chips", items[1].Name)

	require.NoError(t, repo.Delete(ctx, models.CategoryFood, "2222222222"))
	items, err = repo.List(ctx, models.CategoryFood)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
