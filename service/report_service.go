package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"otc-randomizer/logger"
	"otc-randomizer/models"
	"otc-randomizer/templates"
	"otc-randomizer/utils"
)

// Report file names, without extension
const (
	TransactionReportName = "selectedItems"
	MasterListReportName  = "masterList"
)

const (
	transactionItemsPerRow = 2
	masterListItemsPerRow  = 3
)

// reportItem is a catalog item formatted for display
type reportItem struct {
	Name      string
	SKU       string
	BasePrice string
	FullPrice string
	Taxable   bool
	ImageSrc  string
}

type reportRow struct {
	Items  []reportItem
	Shaded bool
}

// ReportService renders transactions and master lists to HTML
type ReportService struct {
	outputDir string
	imageBase string
	pdf       PDFRenderer
	tmpl      *template.Template
}

// NewReportService creates a new ReportService writing into outputDir.
// imageBase prefixes barcode image paths, e.g. "images" for a report saved next to
// the images directory or "/images" when served over HTTP. pdf may be nil.
func NewReportService(outputDir, imageBase string, pdf PDFRenderer) (*ReportService, error) {
	tmpl, err := template.ParseFS(templates.FS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &ReportService{
		outputDir: outputDir,
		imageBase: imageBase,
		pdf:       pdf,
		tmpl:      tmpl,
	}, nil
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// WithImageBase returns a copy of the service using a different image prefix
func (s *ReportService) WithImageBase(imageBase string) *ReportService {
	clone := *s
	clone.imageBase = imageBase
	return &clone
}

// RenderTransaction renders the basket two items per row, shading every other row
func (s *ReportService) RenderTransaction(tx *models.Transaction) ([]byte, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction is required")
	}

	data := struct {
		ID         string
		Category   string
		Title      string
		Target     string
		FinalTotal string
		ItemCount  int
		CreatedAt  string
		Rows       []reportRow
	}{
		ID:         tx.ID.String(),
		Category:   string(tx.Category),
		Title:      tx.Category.Title(),
		Target:     utils.FormatUSD(tx.Basket.Target),
		FinalTotal: utils.FormatUSD(tx.Basket.Target.Sub(tx.Basket.Remainder)),
		ItemCount:  len(tx.Basket.Items),
		CreatedAt:  tx.CreatedAt.Format("2006-01-02 15:04"),
		Rows:       s.rows(tx.Category, tx.Basket.Items, transactionItemsPerRow, true),
	}
	return s.execute("transaction.html", data)
}

// RenderMasterList renders every item of the category three per row
func (s *ReportService) RenderMasterList(category models.Category, items []models.CatalogItem) ([]byte, error) {
	data := struct {
		Category  string
		Title     string
		ItemCount int
		Rows      []reportRow
	}{
		Category:  string(category),
		Title:     category.Title(),
		ItemCount: len(items),
		Rows:      s.rows(category, items, masterListItemsPerRow, false),
	}
	return s.execute("master_list.html", data)
}

// WriteReport saves html as <outputDir>/<name>.html and, when a PDF renderer is
// configured, prints it to <name>.pdf
func (s *ReportService) WriteReport(ctx context.Context, name string, html []byte) (models.ReportArtifact, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return models.ReportArtifact{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	artifact := models.ReportArtifact{
		Name:     name,
		HTMLPath: filepath.Join(s.outputDir, name+".html"),
	}
	if err := os.WriteFile(artifact.HTMLPath, html, 0o644); err != nil {
		return models.ReportArtifact{}, fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("📄 Report written", zap.String("path", artifact.HTMLPath))

	if s.pdf == nil {
		return artifact, nil
	}

	pdf, err := s.pdf.RenderFile(ctx, artifact.HTMLPath)
	if err != nil {
		return artifact, fmt.Errorf("failed to render PDF: %w", err)
	}
	artifact.PDFPath = filepath.Join(s.outputDir, name+".pdf")
	if err := os.WriteFile(artifact.PDFPath, pdf, 0o644); err != nil {
		return artifact, fmt.Errorf("failed to write PDF: %w", err)
	}
	logger.Info("📄 PDF written", zap.String("path", artifact.PDFPath), zap.Int("bytes", len(pdf)))
	return artifact, nil
}

func (s *ReportService) execute(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// rows groups items perRow at a time. With shade set every second row is shaded.
func (s *ReportService) rows(category models.Category, items []models.CatalogItem, perRow int, shade bool) []reportRow {
	rows := make([]reportRow, 0, (len(items)+perRow-1)/perRow)
	for start := 0; start < len(items); start += perRow {
		end := start + perRow
		if end > len(items) {
			end = len(items)
		}

		row := reportRow{Shaded: shade && len(rows)%2 == 1}
		for _, item := range items[start:end] {
			row.Items = append(row.Items, reportItem{
				Name:      item.Name,
				SKU:       item.SKU,
				BasePrice: utils.FormatUSD(item.BasePrice),
				FullPrice: utils.FormatUSD(item.FullPrice),
				Taxable:   item.Taxable,
				ImageSrc:  path.Join(s.imageBase, string(category), item.SKU+".png"),
			})
		}
		rows = append(rows, row)
	}
	return rows
}
