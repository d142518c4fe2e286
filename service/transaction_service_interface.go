package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"otc-randomizer/models"
)

// BasketSelector picks the basket for a target total
type BasketSelector interface {
	SelectBestBasket(target decimal.Decimal, catalog []models.CatalogItem) (models.Basket, error)
}

// TransactionServiceInterface defines the contract for generating transactions
type TransactionServiceInterface interface {
	Generate(ctx context.Context, category models.Category, target decimal.Decimal) (*models.Transaction, error)
	GenerateReport(ctx context.Context, category models.Category, target decimal.Decimal) (*TransactionReport, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	History(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionSummary, error)
}
