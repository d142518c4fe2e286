package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"otc-randomizer/mocks"
	"otc-randomizer/models"
	"otc-randomizer/service"
)

func sampleTransaction() *models.Transaction {
	items := []models.CatalogItem{
		{Name: "Aspirin", SKU: "305730154505", BasePrice: dec("3.49"), Taxable: true, FullPrice: dec("3.80")},
		{Name: "Water", SKU: "012000001291", BasePrice: dec("1.49"), FullPrice: dec("1.49")},
		{Name: "Lotion", SKU: "381370036005", BasePrice: dec("12.00"), Taxable: true, FullPrice: dec("13.07")},
		{Name: "Bandages", SKU: "381371161522", BasePrice: dec("4.25"), FullPrice: dec("4.25")},
		{Name: "Gum & Mints", SKU: "022000159335", BasePrice: dec("0.99"), FullPrice: dec("0.99")},
	}
	return &models.Transaction{
		ID:       uuid.MustParse("7b1d4b52-54a7-4c1c-a8f4-0b5a6e1d2c3f"),
		Category: models.CategoryOTC,
		Basket: models.Basket{
			Items:     items,
			Target:    dec("24.00"),
			Remainder: dec("0.40"),
			Attempts:  2,
		},
		CreatedAt: time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
	}
}

func TestReportServiceRenderTransaction(t *testing.T) {
	svc, err := service.NewReportService(t.TempDir(), "images", nil)
	require.NoError(t, err)

	out, err := svc.RenderTransaction(sampleTransaction())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>otc Items List</title>")
	assert.Contains(t, html, "<h1>OTC Items List</h1>")
	assert.Contains(t, html, "Target total: $24.00")
	assert.Contains(t, html, "Price: $3.49 * =&gt; ( $3.80 )")
	assert.Contains(t, html, "<h3>Price: $1.49</h3>")
	assert.Contains(t, html, `src="images/otc/305730154505.png"`)
	assert.Contains(t, html, "Gum &amp; Mints")
	assert.Contains(t, html, "Final total: ~$23.60")
	assert.Contains(t, html, "7b1d4b52-54a7-4c1c-a8f4-0b5a6e1d2c3f")

	// five items -> three rows, only the middle one shaded
	assert.Equal(t, 3, strings.Count(html, `<div class="row`))
	assert.Equal(t, 1, strings.Count(html, `<div class="row shaded">`))
	assert.Equal(t, 5, strings.Count(html, `<div class="item">`))

	_, err = svc.RenderTransaction(nil)
	assert.Error(t, err)
}

func TestReportServiceRenderEmptyTransaction(t *testing.T) {
	svc, err := service.NewReportService(t.TempDir(), "images", nil)
	require.NoError(t, err)

	tx := &models.Transaction{
		ID:       uuid.New(),
		Category: models.CategoryFood,
		Basket:   models.Basket{Items: []models.CatalogItem{}, Target: dec("0.50"), Remainder: dec("0.50"), Attempts: 1},
	}
	out, err := svc.RenderTransaction(tx)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Final total: ~$0.00")
	assert.NotContains(t, string(out), `<div class="item">`)
}

func TestReportServiceRenderMasterList(t *testing.T) {
	svc, err := service.NewReportService(t.TempDir(), "/images", nil)
	require.NoError(t, err)

	tx := sampleTransaction()
	out, err := svc.RenderMasterList(models.CategoryOTC, tx.Basket.Items)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<h1>OTC Master List</h1>")
	assert.Contains(t, html, "Total Items: 5")
	assert.Equal(t, 2, strings.Count(html, `<div class="row">`))
	assert.Contains(t, html, `src="/images/otc/381371161522.png"`)

	food, err := svc.WithImageBase("pics").RenderMasterList(models.CategoryFood, nil)
	require.NoError(t, err)
	assert.Contains(t, string(food), "<h1>Food Master List</h1>")
	assert.Contains(t, string(food), "Total Items: 0")
}

func TestReportServiceWriteReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	svc, err := service.NewReportService(dir, "images", nil)
	require.NoError(t, err)

	artifact, err := svc.WriteReport(context.Background(), service.MasterListReportName, []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "masterList.html"), artifact.HTMLPath)
	assert.Empty(t, artifact.PDFPath)

	data, err := os.ReadFile(artifact.HTMLPath)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestReportServiceWriteReportWithPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	pdf := mocks.NewMockPDFRenderer(ctrl)
	dir := t.TempDir()

	svc, err := service.NewReportService(dir, "images", pdf)
	require.NoError(t, err)

	htmlPath := filepath.Join(dir, "selectedItems.html")
	pdf.EXPECT().RenderFile(gomock.Any(), htmlPath).Return([]byte("%PDF-1.4"), nil)

	artifact, err := svc.WriteReport(context.Background(), service.TransactionReportName, []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "selectedItems.pdf"), artifact.PDFPath)

	data, err := os.ReadFile(artifact.PDFPath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	pdf.EXPECT().RenderFile(gomock.Any(), htmlPath).Return(nil, errors.New("chrome not found"))
	artifact, err = svc.WriteReport(context.Background(), service.TransactionReportName, []byte("<html></html>"))
	require.Error(t, err)
	assert.Equal(t, htmlPath, artifact.HTMLPath, "html is kept when the pdf fails")
}
