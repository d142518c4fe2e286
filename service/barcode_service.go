package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"otc-randomizer/logger"
	"otc-randomizer/models"
	"otc-randomizer/repository"
	"otc-randomizer/utils"
)

// ProgressFunc is called after each item of a sync run with the number finished so far
type ProgressFunc func(done, total int)

// BarcodeConfig holds the barcode sync settings
type BarcodeConfig struct {
	BaseURL     string
	ImagesDir   string
	Timeout     time.Duration
	Concurrency int
	RatePerSec  float64
	MaxRetries  int
	Width       int
	// RetryInitialInterval is the first backoff delay, 200ms when zero
	RetryInitialInterval time.Duration
}

// BarcodeService downloads a barcode image for every item of a category
type BarcodeService struct {
	repo    repository.CatalogRepositoryInterface
	client  *http.Client
	cfg     BarcodeConfig
	limiter *rate.Limiter
}

// NewBarcodeService creates a new BarcodeService. A nil client gets the default one.
func NewBarcodeService(repo repository.CatalogRepositoryInterface, cfg BarcodeConfig, client *http.Client) *BarcodeService {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = 200 * time.Millisecond
	}

	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}

	return &BarcodeService{
		repo:    repo,
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, cfg.Concurrency),
	}
}

// Ensure BarcodeService implements BarcodeServiceInterface
var _ BarcodeServiceInterface = (*BarcodeService)(nil)

// ImagePath returns where the barcode for sku is stored
func (s *BarcodeService) ImagePath(category models.Category, sku string) string {
	return filepath.Join(s.cfg.ImagesDir, string(category), sku+".png")
}

// SyncCategory fetches missing barcode images for category. With force every image
// is fetched again. A failed item is recorded in the report and does not stop the run.
func (s *BarcodeService) SyncCategory(ctx context.Context, category models.Category, force bool, progress ProgressFunc) (models.SyncReport, error) {
	items, err := s.repo.List(ctx, category)
	if err != nil {
		return models.SyncReport{}, fmt.Errorf("failed to load %s catalog: %w", category, err)
	}

	if err := os.MkdirAll(filepath.Join(s.cfg.ImagesDir, string(category)), 0o755); err != nil {
		return models.SyncReport{}, fmt.Errorf("failed to create image directory: %w", err)
	}

	report := models.SyncReport{Total: len(items), Failed: []string{}}
	logger.Info("🔄 Barcode sync started", zap.String("category", string(category)), zap.Int("items", len(items)))

	var (
		mu   sync.Mutex
		done int
	)
	finish := func(downloaded, skipped bool, failure string) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case downloaded:
			report.Downloaded++
		case skipped:
			report.Skipped++
		default:
			report.Failed = append(report.Failed, failure)
		}
		done++
		if progress != nil {
			progress(done, report.Total)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for _, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if !utils.ValidSKU(item.SKU) {
				logger.Warn("⚠️  Skipping barcode for invalid SKU", zap.String("sku", item.SKU))
				finish(false, false, fmt.Sprintf("%s: invalid sku", item.SKU))
				return nil
			}

			path := s.ImagePath(category, item.SKU)
			if !force && fileExists(path) {
				finish(false, true, "")
				return nil
			}

			if err := s.download(gctx, item.SKU, path); err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Warn("⚠️  Barcode download failed", zap.String("sku", item.SKU), zap.Error(err))
				finish(false, false, fmt.Sprintf("%s: %v", item.SKU, err))
				return nil
			}
			finish(true, false, "")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("barcode sync interrupted: %w", err)
	}

	sort.Strings(report.Failed)
	logger.Info("✅ Barcode sync finished",
		zap.String("category", string(category)),
		zap.Int("downloaded", report.Downloaded),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", len(report.Failed)))
	return report, nil
}

func (s *BarcodeService) download(ctx context.Context, sku, path string) error {
	data, err := s.fetch(ctx, sku)
	if err != nil {
		return err
	}

	data, err = NormalizeBarcodeImage(data, s.cfg.Width)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("✓ Barcode saved", zap.String("sku", sku), zap.String("path", path))
	return nil
}

// fetch GETs the barcode PNG, retrying network errors, 408, 429 and 5xx responses
func (s *BarcodeService) fetch(ctx context.Context, sku string) ([]byte, error) {
	fullURL := s.cfg.BaseURL + url.PathEscape(sku)

	var body []byte
	operation := func() error {
		if err := s.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		reqCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			_, _ = io.Copy(io.Discard, resp.Body)
			statusErr := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if retryableStatus(resp.StatusCode) {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = s.cfg.RetryInitialInterval
	expBackoff.MaxElapsedTime = 0

	maxRetries := s.cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(maxRetries)), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}

func retryableStatus(code int) bool {
	return code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
