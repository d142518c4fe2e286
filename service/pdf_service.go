package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"otc-randomizer/logger"
)

// ChromePDFRenderer prints report files through a headless Chrome
type ChromePDFRenderer struct {
	chromePath string
	timeout    time.Duration
}

// NewChromePDFRenderer creates a renderer. An empty chromePath is looked up in the
// usual install locations, then left to chromedp.
func NewChromePDFRenderer(chromePath string) *ChromePDFRenderer {
	return &ChromePDFRenderer{
		chromePath: detectChromePath(chromePath),
		timeout:    30 * time.Second,
	}
}

// Ensure ChromePDFRenderer implements PDFRenderer
var _ PDFRenderer = (*ChromePDFRenderer)(nil)

// detectChromePath returns configured when it exists, otherwise the first common
// Chrome/Chromium path found
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		logger.Warn("⚠️  CHROME_PATH not found, searching common paths", zap.String("path", configured))
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// RenderFile loads htmlPath from disk and prints it on US Letter paper
func (r *ChromePDFRenderer) RenderFile(ctx context.Context, htmlPath string) ([]byte, error) {
	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", htmlPath, err)
	}
	fileURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}).String()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("allow-file-access-from-files", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate(fileURL),
		chromedp.WaitReady("body"),
		// Wait for barcode images; missing ones resolve too
		chromedp.Evaluate(`
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				if (img.complete) { return Promise.resolve(); }
				return new Promise(resolve => { img.onload = resolve; img.onerror = resolve; });
			}));
		`, nil, func(p *cdpruntime.EvaluateParams) *cdpruntime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	logger.Debug("🖨️  PDF rendered", zap.String("source", absPath), zap.Int("bytes", len(pdfBuf)))
	return pdfBuf, nil
}
