package service

import (
	"context"

	"otc-randomizer/models"
)

// ReportServiceInterface defines the contract for rendering and saving reports
type ReportServiceInterface interface {
	RenderTransaction(tx *models.Transaction) ([]byte, error)
	RenderMasterList(category models.Category, items []models.CatalogItem) ([]byte, error)
	WriteReport(ctx context.Context, name string, html []byte) (models.ReportArtifact, error)
}

// PDFRenderer prints an HTML file to PDF
type PDFRenderer interface {
	RenderFile(ctx context.Context, htmlPath string) ([]byte, error)
}
