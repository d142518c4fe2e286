package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"otc-randomizer/logger"
	"otc-randomizer/models"
)

// TransactionLogFileRepository appends one JSON transaction per line to a file
type TransactionLogFileRepository struct {
	path string
	mu   sync.Mutex
}

// NewTransactionLogFileRepository creates a history stored at path
func NewTransactionLogFileRepository(path string) *TransactionLogFileRepository {
	return &TransactionLogFileRepository{path: path}
}

// Ensure TransactionLogFileRepository implements TransactionLogRepositoryInterface
var _ TransactionLogRepositoryInterface = (*TransactionLogFileRepository)(nil)

// Save appends tx to the history
func (r *TransactionLogFileRepository) Save(ctx context.Context, tx *models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(tx)
	if err != nil {
		return errors.Wrapf(err, "encode transaction %s", tx.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return errors.Wrapf(err, "create history dir for %s", r.path)
	}
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "open history %s", r.path)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return errors.Wrapf(err, "append to history %s", r.path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close history %s", r.path)
	}

	logger.Debug("💾 Transaction recorded", zap.String("id", tx.ID.String()), zap.String("path", r.path))
	return nil
}

// GetByID returns the recorded transaction with id
func (r *TransactionLogFileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	var found *models.Transaction
	err := r.scan(ctx, func(tx *models.Transaction) bool {
		if tx.ID == id {
			found = tx
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.Wrapf(ErrTransactionNotFound, "transaction %s", id)
	}
	return found, nil
}

// List returns summaries matching filter, newest first
func (r *TransactionLogFileRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionSummary, error) {
	summaries := []models.TransactionSummary{}
	err := r.scan(ctx, func(tx *models.Transaction) bool {
		if s := tx.Summary(); filter.Matches(s) {
			summaries = append(summaries, s)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	if filter.Limit > 0 && len(summaries) > filter.Limit {
		summaries = summaries[:filter.Limit]
	}
	return summaries, nil
}

// scan calls fn for each recorded transaction until fn returns false
func (r *TransactionLogFileRepository) scan(ctx context.Context, fn func(*models.Transaction) bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "open history %s", r.path)
	}
	defer f.Close()

	// no line length limit
	reader := bufio.NewReader(f)
	line := 0
	for {
		data, readErr := reader.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return errors.Wrapf(readErr, "read history %s", r.path)
		}
		line++

		if data = bytes.TrimSpace(data); len(data) > 0 {
			var tx models.Transaction
			if err := json.Unmarshal(data, &tx); err != nil {
				return errors.Wrapf(err, "decode %s line %d", r.path, line)
			}
			if !fn(&tx) {
				return nil
			}
		}

		if readErr == io.EOF {
			return nil
		}
	}
}
