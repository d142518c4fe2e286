package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"otc-randomizer/logger"
	"otc-randomizer/models"
)

// CatalogFileRepository stores each category as a JSON array in <dir>/<category>.json
type CatalogFileRepository struct {
	dir string
	mu  sync.Mutex
}

// NewCatalogFileRepository creates a new CatalogFileRepository rooted at dir
func NewCatalogFileRepository(dir string) *CatalogFileRepository {
	return &CatalogFileRepository{dir: dir}
}

// Ensure CatalogFileRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogFileRepository)(nil)

// Path returns the archive file for category
func (r *CatalogFileRepository) Path(category models.Category) string {
	return filepath.Join(r.dir, string(category)+".json")
}

// List reads the category archive. A missing file is an empty catalog.
func (r *CatalogFileRepository) List(ctx context.Context, category models.Category) ([]models.CatalogItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(ctx, category)
}

// ReplaceAll overwrites the category archive with items
func (r *CatalogFileRepository) ReplaceAll(ctx context.Context, category models.Category, items []models.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(ctx, category, items)
}

// Append adds item at the end of the category archive
func (r *CatalogFileRepository) Append(ctx context.Context, category models.Category, item models.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.read(ctx, category)
	if err != nil {
		return err
	}
	if indexOfSKU(items, item.SKU) >= 0 {
		return errors.Wrapf(ErrDuplicateSKU, "append %s to %s", item.SKU, category)
	}
	return r.write(ctx, category, append(items, item))
}

// Update replaces the item stored under sku, keeping its position
func (r *CatalogFileRepository) Update(ctx context.Context, category models.Category, sku string, item models.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.read(ctx, category)
	if err != nil {
		return err
	}
	idx := indexOfSKU(items, sku)
	if idx < 0 {
		return errors.Wrapf(ErrItemNotFound, "update %s in %s", sku, category)
	}
	items[idx] = item
	return r.write(ctx, category, items)
}

// Delete removes the item stored under sku
func (r *CatalogFileRepository) Delete(ctx context.Context, category models.Category, sku string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.read(ctx, category)
	if err != nil {
		return err
	}
	idx := indexOfSKU(items, sku)
	if idx < 0 {
		return errors.Wrapf(ErrItemNotFound, "delete %s from %s", sku, category)
	}
	items = append(items[:idx], items[idx+1:]...)
	return r.write(ctx, category, items)
}

func (r *CatalogFileRepository) read(ctx context.Context, category models.Category) ([]models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := r.Path(category)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debug("📂 Archive not found, starting empty", zap.String("path", path))
		return []models.CatalogItem{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read archive %s", path)
	}

	items := []models.CatalogItem{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "decode archive %s", path)
	}
	return items, nil
}

// write goes through a temp file in the same directory so a crash never leaves a
// truncated archive behind
func (r *CatalogFileRepository) write(ctx context.Context, category models.Category, items []models.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if items == nil {
		items = []models.CatalogItem{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s archive", category)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return errors.Wrapf(err, "create archive dir %s", r.dir)
	}

	path := r.Path(category)
	tmp, err := os.CreateTemp(r.dir, "."+string(category)+"-*.json")
	if err != nil {
		return errors.Wrapf(err, "create temp file for %s", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replace archive %s", path)
	}

	logger.Debug("💾 Archive saved", zap.String("path", path), zap.Int("items", len(items)))
	return nil
}

func indexOfSKU(items []models.CatalogItem, sku string) int {
	for i, it := range items {
		if it.SKU == sku {
			return i
		}
	}
	return -1
}
