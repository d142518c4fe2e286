package service

import (
	"context"

	"otc-randomizer/models"
)

// CatalogServiceInterface defines the contract for catalog management
type CatalogServiceInterface interface {
	CreateItem(ctx context.Context, category models.Category, input NewItemInput) (*models.CatalogItem, error)
	FindItem(ctx context.Context, sku string) (models.Category, *models.CatalogItem, error)
	UpdateItem(ctx context.Context, sku string, update ItemUpdate) (*models.CatalogItem, error)
	DeleteItem(ctx context.Context, sku string) (*models.CatalogItem, error)
	ListItems(ctx context.Context, category models.Category) ([]models.CatalogItem, error)
	RefreshCatalog(ctx context.Context, category models.Category) ([]models.CatalogItem, error)
}
