package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otc-randomizer/models"
	"otc-randomizer/repository"
	"otc-randomizer/service"
)

func barcodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		c := color.Gray{Y: 255}
		if x%3 == 0 {
			c = color.Gray{Y: 0}
		}
		for y := 0; y < height; y++ {
			img.SetGray(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type barcodeFixture struct {
	svc       *service.BarcodeService
	imagesDir string
	hits      map[string]*int32
	mu        sync.Mutex
}

func (f *barcodeFixture) hitCount(sku string) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.hits[sku]; ok {
		return atomic.LoadInt32(n)
	}
	return 0
}

func newBarcodeFixture(t *testing.T, items []models.CatalogItem, handler func(sku string, attempt int32, w http.ResponseWriter)) *barcodeFixture {
	t.Helper()
	ctx := context.Background()
	root := t.TempDir()

	repo := repository.NewCatalogFileRepository(filepath.Join(root, "itemArchive"))
	require.NoError(t, repo.ReplaceAll(ctx, models.CategoryOTC, items))

	f := &barcodeFixture{imagesDir: filepath.Join(root, "images"), hits: map[string]*int32{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sku := strings.TrimPrefix(r.URL.Path, "/api/code128/")
		f.mu.Lock()
		n, ok := f.hits[sku]
		if !ok {
			n = new(int32)
			f.hits[sku] = n
		}
		f.mu.Unlock()
		handler(sku, atomic.AddInt32(n, 1), w)
	}))
	t.Cleanup(srv.Close)

	f.svc = service.NewBarcodeService(repo, service.BarcodeConfig{
		BaseURL:              srv.URL + "/api/code128/",
		ImagesDir:            f.imagesDir,
		Timeout:              time.Second,
		Concurrency:          2,
		MaxRetries:           3,
		RetryInitialInterval: time.Millisecond,
	}, srv.Client())
	return f
}

func otcItems(skus ...string) []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(skus))
	for _, sku := range skus {
		items = append(items, models.CatalogItem{Name: "Item " + sku, SKU: sku, BasePrice: dec("1.00"), FullPrice: dec("1.00")})
	}
	return items
}

func TestBarcodeServiceSyncDownloadsAndReportsFailures(t *testing.T) {
	pngData := barcodePNG(t, 30, 10)
	f := newBarcodeFixture(t, otcItems("1111111111", "2222222222", "3333333333"), func(sku string, attempt int32, w http.ResponseWriter) {
		switch sku {
		case "2222222222":
			// transient failure once, then success
			if attempt == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		case "3333333333":
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngData)
	})

	var (
		progressMu sync.Mutex
		calls      []int
	)
	report, err := f.svc.SyncCategory(context.Background(), models.CategoryOTC, false, func(done, total int) {
		progressMu.Lock()
		defer progressMu.Unlock()
		assert.Equal(t, 3, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Downloaded)
	assert.Zero(t, report.Skipped)
	require.Len(t, report.Failed, 1)
	assert.True(t, strings.HasPrefix(report.Failed[0], "3333333333: "), report.Failed[0])
	assert.Contains(t, report.Failed[0], "404")

	assert.Equal(t, []int{1, 2, 3}, calls)
	assert.EqualValues(t, 2, f.hitCount("2222222222"), "503 is retried")
	assert.EqualValues(t, 1, f.hitCount("3333333333"), "404 is not retried")

	for _, sku := range []string{"1111111111", "2222222222"} {
		_, err := os.Stat(filepath.Join(f.imagesDir, "otc", sku+".png"))
		assert.NoError(t, err)
	}
	assert.Equal(t, filepath.Join(f.imagesDir, "otc", "1111111111.png"), f.svc.ImagePath(models.CategoryOTC, "1111111111"))
}

func TestBarcodeServiceRejectsUnsafeSKUs(t *testing.T) {
	pngData := barcodePNG(t, 30, 10)
	f := newBarcodeFixture(t, otcItems("1111111111", "../../escape"), func(_ string, _ int32, w http.ResponseWriter) {
		_, _ = w.Write(pngData)
	})

	report, err := f.svc.SyncCategory(context.Background(), models.CategoryOTC, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Downloaded)
	assert.Equal(t, []string{"../../escape: invalid sku"}, report.Failed)

	root := filepath.Dir(f.imagesDir)
	_, err = os.Stat(filepath.Join(root, "escape.png"))
	assert.True(t, os.IsNotExist(err), "nothing is written outside the images directory")
	_, err = os.Stat(filepath.Join(f.imagesDir, "otc", "1111111111.png"))
	assert.NoError(t, err)
}

func TestBarcodeServiceSkipsExistingUnlessForced(t *testing.T) {
	pngData := barcodePNG(t, 30, 10)
	f := newBarcodeFixture(t, otcItems("1111111111", "2222222222"), func(_ string, _ int32, w http.ResponseWriter) {
		_, _ = w.Write(pngData)
	})

	dir := filepath.Join(f.imagesDir, "otc")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1111111111.png"), []byte("existing"), 0o644))

	report, err := f.svc.SyncCategory(context.Background(), models.CategoryOTC, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Downloaded)
	assert.Zero(t, f.hitCount("1111111111"))

	report, err = f.svc.SyncCategory(context.Background(), models.CategoryOTC, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Downloaded)
	assert.EqualValues(t, 1, f.hitCount("1111111111"))

	data, err := os.ReadFile(filepath.Join(dir, "1111111111.png"))
	require.NoError(t, err)
	assert.NotEqual(t, "existing", string(data))
}

func TestBarcodeServiceGivesUpAfterMaxRetries(t *testing.T) {
	f := newBarcodeFixture(t, otcItems("1111111111"), func(_ string, _ int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	report, err := f.svc.SyncCategory(context.Background(), models.CategoryOTC, false, nil)
	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed[0], "429")
	assert.EqualValues(t, 4, f.hitCount("1111111111"), "first attempt plus three retries")
}

func TestBarcodeServiceRejectsUndecodableImage(t *testing.T) {
	f := newBarcodeFixture(t, otcItems("1111111111"), func(_ string, _ int32, w http.ResponseWriter) {
		_, _ = w.Write([]byte("<html>not a png</html>"))
	})

	report, err := f.svc.SyncCategory(context.Background(), models.CategoryOTC, false, nil)
	require.NoError(t, err)
	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed[0], "decode")
}

func TestBarcodeServiceStopsOnCancel(t *testing.T) {
	f := newBarcodeFixture(t, otcItems("1111111111", "2222222222"), func(_ string, _ int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.SyncCategory(ctx, models.CategoryOTC, false, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalizeBarcodeImage(t *testing.T) {
	src := barcodePNG(t, 30, 10)

	out, err := service.NormalizeBarcodeImage(src, 60)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	out, err = service.NormalizeBarcodeImage(src, 0)
	require.NoError(t, err)
	img, err = png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())

	_, err = service.NormalizeBarcodeImage([]byte("nope"), 0)
	assert.Error(t, err)
}
