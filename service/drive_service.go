package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"otc-randomizer/logger"
	"otc-randomizer/models"
)

// DrivePublisher uploads reports into a Google Drive folder
type DrivePublisher struct {
	client   *drive.Service
	folderID string
}

// NewDrivePublisher creates a new DrivePublisher.
// Production callers pass option.WithCredentialsFile with a Service Account JSON file.
func NewDrivePublisher(ctx context.Context, folderID string, opts ...option.ClientOption) (*DrivePublisher, error) {
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DrivePublisher{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// Ensure DrivePublisher implements PublisherInterface
var _ PublisherInterface = (*DrivePublisher)(nil)

// Publish uploads the report and returns its web view link
func (p *DrivePublisher) Publish(ctx context.Context, artifact models.ReportArtifact) (string, error) {
	path, contentType := publishedFile(artifact)
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	file := &drive.File{
		Name:     filepath.Base(path),
		MimeType: contentType,
	}
	if p.folderID != "" {
		file.Parents = []string{p.folderID}
	}

	created, err := p.client.Files.Create(file).
		Media(f, googleapi.ContentType(contentType)).
		Fields("id, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload report to drive: %w", err)
	}

	link := created.WebViewLink
	if link == "" {
		link = fmt.Sprintf("https://drive.google.com/file/d/%s/view", created.Id)
	}
	logger.Info("☁️  Report uploaded to Drive", zap.String("file", file.Name), zap.String("id", created.Id))
	return link, nil
}
