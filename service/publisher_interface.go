package service

import (
	"context"

	"otc-randomizer/models"
)

// PublisherInterface uploads a written report and returns where it can be viewed
type PublisherInterface interface {
	Publish(ctx context.Context, artifact models.ReportArtifact) (string, error)
}

// publishedFile picks the file to upload: the PDF when one was rendered
func publishedFile(artifact models.ReportArtifact) (path, contentType string) {
	if artifact.PDFPath != "" {
		return artifact.PDFPath, "application/pdf"
	}
	return artifact.HTMLPath, "text/html; charset=utf-8"
}
