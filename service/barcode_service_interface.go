package service

import (
	"context"

	"otc-randomizer/models"
)

// BarcodeServiceInterface defines the contract for barcode image sync
type BarcodeServiceInterface interface {
	ImagePath(category models.Category, sku string) string
	SyncCategory(ctx context.Context, category models.Category, force bool, progress ProgressFunc) (models.SyncReport, error)
}
