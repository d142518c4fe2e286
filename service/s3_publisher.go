package service

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"otc-randomizer/logger"
	"otc-randomizer/models"
)

// S3Config holds the bucket settings for S3Publisher. Endpoint may point at any
// S3-compatible store such as R2 or MinIO.
type S3Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	Prefix        string
}

// S3Publisher uploads reports into an S3 bucket
type S3Publisher struct {
	client  *s3.Client
	bucket  string
	baseURL string
	prefix  string
	now     func() time.Time
}

// NewS3Publisher creates a new S3Publisher with static credentials
func NewS3Publisher(ctx context.Context, cfg S3Config) (*S3Publisher, error) {
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "reports"
	}

	return &S3Publisher{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: cfg.PublicBaseURL,
		prefix:  prefix,
		now:     time.Now,
	}, nil
}

// Ensure S3Publisher implements PublisherInterface
var _ PublisherInterface = (*S3Publisher)(nil)

// Publish uploads the report under <prefix>/<timestamp>-<file> and returns its public URL
func (p *S3Publisher) Publish(ctx context.Context, artifact models.ReportArtifact) (string, error) {
	filePath, contentType := publishedFile(artifact)
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	key := path.Join(p.prefix, p.now().UTC().Format("20060102-150405")+"-"+filepath.Base(filePath))
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report to s3: %w", err)
	}

	logger.Info("☁️  Report uploaded to S3", zap.String("bucket", p.bucket), zap.String("key", key))
	if p.baseURL == "" {
		return fmt.Sprintf("s3://%s/%s", p.bucket, key), nil
	}
	return fmt.Sprintf("%s/%s", p.baseURL, key), nil
}
