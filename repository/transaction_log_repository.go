package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"otc-randomizer/db"
	"otc-randomizer/logger"
	"otc-randomizer/models"
)

// TransactionLogRepository handles database operations for the transaction history
type TransactionLogRepository struct{}

// NewTransactionLogRepository creates a new TransactionLogRepository
func NewTransactionLogRepository() *TransactionLogRepository {
	return &TransactionLogRepository{}
}

// Ensure TransactionLogRepository implements TransactionLogRepositoryInterface
var _ TransactionLogRepositoryInterface = (*TransactionLogRepository)(nil)

// Save stores the transaction and its basket lines atomically
func (r *TransactionLogRepository) Save(ctx context.Context, t *models.Transaction) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	insertTx := `
		INSERT INTO transactions (id, category, target, remainder, attempts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = tx.ExecContext(ctx, insertTx,
		t.ID,
		string(t.Category),
		t.Basket.Target,
		t.Basket.Remainder,
		t.Basket.Attempts,
		t.CreatedAt,
	)
	if err != nil {
		logger.Error("❌ Error inserting transaction", zap.String("id", t.ID.String()), zap.Error(err))
		return errors.Wrapf(err, "insert transaction %s", t.ID)
	}

	insertLine := `
		INSERT INTO transaction_items (transaction_id, line, sku, name, price, taxable, full_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i, item := range t.Basket.Items {
		if _, err := tx.ExecContext(ctx, insertLine, t.ID, i, item.SKU, item.Name, item.BasePrice, item.Taxable, item.FullPrice); err != nil {
			return errors.Wrapf(err, "insert line %d of transaction %s", i, t.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}

	logger.Debug("✅ Transaction recorded", zap.String("id", t.ID.String()), zap.Int("lines", len(t.Basket.Items)))
	return nil
}

// GetByID retrieves a transaction with its basket lines in pick order
func (r *TransactionLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, category, target, remainder, attempts, created_at
		FROM transactions
		WHERE id = $1
	`

	var t models.Transaction
	var category string
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&category,
		&t.Basket.Target,
		&t.Basket.Remainder,
		&t.Basket.Attempts,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(ErrTransactionNotFound, "transaction %s", id)
		}
		return nil, errors.Wrapf(err, "fetch transaction %s", id)
	}
	t.Category = models.Category(category)

	queryLines := `
		SELECT sku, name, price, taxable, full_price
		FROM transaction_items
		WHERE transaction_id = $1
		ORDER BY line ASC
	`
	rows, err := db.DB.QueryContext(ctx, queryLines, id)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch lines of transaction %s", id)
	}
	defer rows.Close()

	t.Basket.Items = []models.CatalogItem{}
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.SKU, &item.Name, &item.BasePrice, &item.Taxable, &item.FullPrice); err != nil {
			return nil, errors.Wrapf(err, "scan line of transaction %s", id)
		}
		t.Basket.Items = append(t.Basket.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterate lines of transaction %s", id)
	}

	return &t, nil
}

// List retrieves transaction summaries filtered by category and date range
func (r *TransactionLogRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionSummary, error) {
	query := `
		SELECT t.id, t.category, t.target, t.remainder, t.created_at,
		       COUNT(i.line), COALESCE(SUM(i.full_price), 0)
		FROM transactions t
		LEFT JOIN transaction_items i ON i.transaction_id = t.id
	`
	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, string(filter.Category))
		conditions = append(conditions, fmt.Sprintf("t.category = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conditions = append(conditions, fmt.Sprintf("t.created_at >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conditions = append(conditions, fmt.Sprintf("t.created_at <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " GROUP BY t.id ORDER BY t.created_at DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("❌ Error listing transactions", zap.Error(err))
		return nil, errors.Wrap(err, "list transactions")
	}
	defer rows.Close()

	summaries := []models.TransactionSummary{}
	for rows.Next() {
		var s models.TransactionSummary
		var category string
		if err := rows.Scan(&s.ID, &category, &s.Target, &s.Remainder, &s.CreatedAt, &s.ItemCount, &s.Total); err != nil {
			return nil, errors.Wrap(err, "scan transaction summary")
		}
		s.Category = models.Category(category)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate transactions")
	}

	logger.Debug("✅ Transactions listed", zap.Int("count", len(summaries)))
	return summaries, nil
}
