package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"otc-randomizer/db"
	"otc-randomizer/logger"
	"otc-randomizer/models"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure
const uniqueViolation = "23505"

// CatalogPostgresRepository handles database operations for the catalog_items table
type CatalogPostgresRepository struct{}

// NewCatalogPostgresRepository creates a new CatalogPostgresRepository
func NewCatalogPostgresRepository() *CatalogPostgresRepository {
	return &CatalogPostgresRepository{}
}

// Ensure CatalogPostgresRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogPostgresRepository)(nil)

// List retrieves the category items in stored order
func (r *CatalogPostgresRepository) List(ctx context.Context, category models.Category) ([]models.CatalogItem, error) {
	query := `
		SELECT name, sku, price, taxable, full_price
		FROM catalog_items
		WHERE category = $1
		ORDER BY position ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, string(category))
	if err != nil {
		logger.Error("❌ Error querying catalog items", zap.String("category", string(category)), zap.Error(err))
		return nil, errors.Wrapf(err, "query %s items", category)
	}
	defer rows.Close()

	items := []models.CatalogItem{}
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.Name, &item.SKU, &item.BasePrice, &item.Taxable, &item.FullPrice); err != nil {
			return nil, errors.Wrapf(err, "scan %s item", category)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterate %s items", category)
	}

	logger.Debug("✅ Catalog items loaded", zap.String("category", string(category)), zap.Int("count", len(items)))
	return items, nil
}

// ReplaceAll rewrites every row of the category inside one transaction
func (r *CatalogPostgresRepository) ReplaceAll(ctx context.Context, category models.Category, items []models.CatalogItem) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_items WHERE category = $1`, string(category)); err != nil {
		return errors.Wrapf(err, "clear %s items", category)
	}

	insert := `
		INSERT INTO catalog_items (category, sku, name, price, taxable, full_price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, item := range items {
		if _, err := tx.ExecContext(ctx, insert, string(category), item.SKU, item.Name, item.BasePrice, item.Taxable, item.FullPrice, i); err != nil {
			return mapWriteError(err, "insert %s into %s", item.SKU, category)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

// Append inserts item after the last stored position of the category
func (r *CatalogPostgresRepository) Append(ctx context.Context, category models.Category, item models.CatalogItem) error {
	query := `
		INSERT INTO catalog_items (category, sku, name, price, taxable, full_price, position)
		SELECT $1, $2, $3, $4, $5, $6, COALESCE(MAX(position) + 1, 0)
		FROM catalog_items
		WHERE category = $1
	`
	if _, err := db.DB.ExecContext(ctx, query, string(category), item.SKU, item.Name, item.BasePrice, item.Taxable, item.FullPrice); err != nil {
		return mapWriteError(err, "append %s to %s", item.SKU, category)
	}
	return nil
}

// Update replaces the row stored under sku, keeping its position
func (r *CatalogPostgresRepository) Update(ctx context.Context, category models.Category, sku string, item models.CatalogItem) error {
	query := `
		UPDATE catalog_items
		SET sku = $3, name = $4, price = $5, taxable = $6, full_price = $7
		WHERE category = $1 AND sku = $2
	`
	res, err := db.DB.ExecContext(ctx, query, string(category), sku, item.SKU, item.Name, item.BasePrice, item.Taxable, item.FullPrice)
	if err != nil {
		return mapWriteError(err, "update %s in %s", sku, category)
	}
	return requireAffected(res, "update %s in %s", sku, category)
}

// Delete removes the row stored under sku
func (r *CatalogPostgresRepository) Delete(ctx context.Context, category models.Category, sku string) error {
	res, err := db.DB.ExecContext(ctx, `DELETE FROM catalog_items WHERE category = $1 AND sku = $2`, string(category), sku)
	if err != nil {
		return errors.Wrapf(err, "delete %s from %s", sku, category)
	}
	return requireAffected(res, "delete %s from %s", sku, category)
}

func mapWriteError(err error, format string, args ...interface{}) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Wrapf(ErrDuplicateSKU, format, args...)
	}
	return errors.Wrapf(err, format, args...)
}

func requireAffected(res sql.Result, format string, args ...interface{}) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, format, args...)
	}
	if n == 0 {
		return errors.Wrapf(ErrItemNotFound, format, args...)
	}
	return nil
}
