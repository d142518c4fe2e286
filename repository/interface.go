package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"otc-randomizer/models"
)

var (
	// ErrItemNotFound is returned when no item in the category has the SKU
	ErrItemNotFound = errors.New("item not found")

	// ErrDuplicateSKU is returned when an item with the same SKU already exists
	ErrDuplicateSKU = errors.New("an item with this SKU already exists")

	// ErrTransactionNotFound is returned when no recorded transaction has the ID
	ErrTransactionNotFound = errors.New("transaction not found")
)

// CatalogRepositoryInterface defines the contract for catalog storage.
// Items keep the order they were stored in.
type CatalogRepositoryInterface interface {
	List(ctx context.Context, category models.Category) ([]models.CatalogItem, error)
	ReplaceAll(ctx context.Context, category models.Category, items []models.CatalogItem) error
	Append(ctx context.Context, category models.Category, item models.CatalogItem) error
	Update(ctx context.Context, category models.Category, sku string, item models.CatalogItem) error
	Delete(ctx context.Context, category models.Category, sku string) error
}

// TransactionLogRepositoryInterface defines the contract for the transaction history.
// List returns the newest transactions first.
type TransactionLogRepositoryInterface interface {
	Save(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionSummary, error)
}
