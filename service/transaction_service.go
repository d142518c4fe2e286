package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"otc-randomizer/logger"
	"otc-randomizer/models"
	"otc-randomizer/repository"
)

// DefaultMaxTarget caps the total a single transaction may ask for. The basket
// grows with the total, one item per draw.
var DefaultMaxTarget = decimal.NewFromInt(10000)

var (
	// ErrInvalidTarget is returned for a negative total or one above the configured maximum
	ErrInvalidTarget = errors.New("invalid transaction total")

	// ErrHistoryDisabled is returned by history lookups when no log is configured
	ErrHistoryDisabled = errors.New("transaction history is not enabled")
)

// TransactionReport is a generated transaction with its saved report
type TransactionReport struct {
	Transaction  *models.Transaction   `json:"transaction"`
	Artifact     models.ReportArtifact `json:"artifact"`
	PublishedURL string                `json:"publishedUrl,omitempty"`
}

// TransactionService builds random transactions from a category catalog
type TransactionService struct {
	catalog   CatalogServiceInterface
	selector  BasketSelector
	reports   ReportServiceInterface
	publisher PublisherInterface
	history   repository.TransactionLogRepositoryInterface
	maxTarget decimal.Decimal
	now       func() time.Time
	newID     func() uuid.UUID
}

// NewTransactionService creates a new TransactionService. publisher may be nil.
func NewTransactionService(
	catalog CatalogServiceInterface,
	selector BasketSelector,
	reports ReportServiceInterface,
	publisher PublisherInterface,
) *TransactionService {
	return &TransactionService{
		catalog:   catalog,
		selector:  selector,
		reports:   reports,
		publisher: publisher,
		maxTarget: DefaultMaxTarget,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// WithHistory records every generated transaction in history
func (s *TransactionService) WithHistory(history repository.TransactionLogRepositoryInterface) *TransactionService {
	s.history = history
	return s
}

// WithMaxTarget sets the largest accepted transaction total. A non-positive
// value keeps the current limit.
func (s *TransactionService) WithMaxTarget(limit decimal.Decimal) *TransactionService {
	if limit.IsPositive() {
		s.maxTarget = limit
	}
	return s
}

// MaxTarget returns the largest accepted transaction total
func (s *TransactionService) MaxTarget() decimal.Decimal {
	return s.maxTarget
}

// Ensure TransactionService implements TransactionServiceInterface
var _ TransactionServiceInterface = (*TransactionService)(nil)

// Generate selects a basket for target from the category catalog
func (s *TransactionService) Generate(ctx context.Context, category models.Category, target decimal.Decimal) (*models.Transaction, error) {
	if target.IsNegative() {
		return nil, fmt.Errorf("%w: must not be negative", ErrInvalidTarget)
	}
	if target.GreaterThan(s.maxTarget) {
		return nil, fmt.Errorf("%w: must not exceed %s", ErrInvalidTarget, s.maxTarget.StringFixed(2))
	}

	items, err := s.catalog.ListItems(ctx, category)
	if err != nil {
		return nil, err
	}

	basket, err := s.selector.SelectBestBasket(target, items)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s items: %w", category, err)
	}

	tx := &models.Transaction{
		ID:        s.newID(),
		Category:  category,
		Basket:    basket,
		CreatedAt: s.now(),
	}

	logger.Info("🛒 Transaction generated",
		zap.String("id", tx.ID.String()),
		zap.String("category", string(category)),
		zap.String("target", target.StringFixed(2)),
		zap.Int("items", len(basket.Items)),
		zap.String("remainder", basket.Remainder.StringFixed(2)),
		zap.Int("attempts", basket.Attempts))

	if s.history != nil {
		if err := s.history.Save(ctx, tx); err != nil {
			logger.Error("❌ Failed to record transaction", zap.String("id", tx.ID.String()), zap.Error(err))
		}
	}
	return tx, nil
}

// Get returns a recorded transaction
func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.GetByID(ctx, id)
}

// History lists recorded transactions, newest first
func (s *TransactionService) History(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionSummary, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("unknown category %q", filter.Category)
	}
	return s.history.List(ctx, filter)
}

// GenerateReport generates a transaction, writes its report and publishes it when
// a publisher is configured. A failed upload is logged; the local report is kept.
func (s *TransactionService) GenerateReport(ctx context.Context, category models.Category, target decimal.Decimal) (*TransactionReport, error) {
	tx, err := s.Generate(ctx, category, target)
	if err != nil {
		return nil, err
	}

	html, err := s.reports.RenderTransaction(tx)
	if err != nil {
		return nil, err
	}

	artifact, err := s.reports.WriteReport(ctx, TransactionReportName, html)
	if err != nil {
		return nil, err
	}

	result := &TransactionReport{Transaction: tx, Artifact: artifact}
	if s.publisher == nil {
		return result, nil
	}

	url, err := s.publisher.Publish(ctx, artifact)
	if err != nil {
		logger.Error("❌ Failed to publish report", zap.String("path", artifact.HTMLPath), zap.Error(err))
		return result, nil
	}
	result.PublishedURL = url
	return result, nil
}
