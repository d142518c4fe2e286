package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"otc-randomizer/app/controller"
	"otc-randomizer/app/router"
	"otc-randomizer/config"
	"otc-randomizer/db"
	"otc-randomizer/logger"
	"otc-randomizer/pricing"
	"otc-randomizer/randomizer"
	"otc-randomizer/repository"
	"otc-randomizer/service"
)

// App holds the services shared by the programs
type App struct {
	Config       config.Config
	Repository   repository.CatalogRepositoryInterface
	Catalog      *service.CatalogService
	Barcodes     *service.BarcodeService
	Reports      *service.ReportService
	Publisher    service.PublisherInterface
	Selector     *randomizer.Selector
	Transactions *service.TransactionService

	usesDB bool
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &App{Config: cfg}
	var history repository.TransactionLogRepositoryInterface

	// Initialize repository
	switch cfg.CatalogBackend {
	case config.BackendPostgres:
		if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.usesDB = true
		if err := db.EnsureSchema(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to prepare database schema: %w", err)
		}
		a.Repository = repository.NewCatalogPostgresRepository()
		history = repository.NewTransactionLogRepository()
	default:
		a.Repository = repository.NewCatalogFileRepository(cfg.ArchiveDir())
		history = repository.NewTransactionLogFileRepository(cfg.HistoryPath())
	}

	a.Catalog = service.NewCatalogService(a.Repository, pricing.NewCalculator(cfg.TaxRate))

	a.Barcodes = service.NewBarcodeService(a.Repository, service.BarcodeConfig{
		BaseURL:     cfg.BarcodeAPIURL,
		ImagesDir:   cfg.ImagesDir(),
		Timeout:     cfg.BarcodeTimeout,
		Concurrency: cfg.BarcodeConcurrency,
		RatePerSec:  cfg.BarcodeRatePerSec,
		MaxRetries:  cfg.BarcodeMaxRetries,
		Width:       cfg.BarcodeWidth,
	}, &http.Client{})

	var pdf service.PDFRenderer
	if cfg.ReportPDF {
		pdf = service.NewChromePDFRenderer(cfg.ChromePath)
	}
	reports, err := service.NewReportService(cfg.DataDir, "images", pdf)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Reports = reports

	publisher, err := newPublisher(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Publisher = publisher

	a.Selector = NewSelector(cfg)

	a.Transactions = service.NewTransactionService(a.Catalog, a.Selector, a.Reports, a.Publisher).
		WithHistory(history).
		WithMaxTarget(cfg.MaxTransactionTotal)

	logger.Info("✅ Application initialized",
		zap.String("backend", cfg.CatalogBackend),
		zap.String("data_dir", cfg.DataDir),
		zap.String("publish_target", cfg.PublishTarget),
		zap.Bool("pdf", cfg.ReportPDF),
	)
	return a, nil
}

// NewSelector builds the shared basket selector. A configured seed makes draws
// reproducible; the seeded source is locked because the HTTP handlers share it.
func NewSelector(cfg config.Config) *randomizer.Selector {
	src := randomizer.GlobalSource()
	if cfg.RandomizerSeed != nil {
		src = randomizer.NewLockedSource(randomizer.NewSeededSource(*cfg.RandomizerSeed))
	}
	return randomizer.NewSelector(src,
		randomizer.WithMinimumThreshold(cfg.RandomizerMinimum),
		randomizer.WithAcceptRemainder(cfg.RandomizerAcceptRemainder),
		randomizer.WithMaxAttempts(cfg.RandomizerMaxAttempts),
	)
}

func newPublisher(ctx context.Context, cfg config.Config) (service.PublisherInterface, error) {
	switch cfg.PublishTarget {
	case config.PublishDrive:
		pub, err := service.NewDrivePublisher(ctx, cfg.DriveFolderID, option.WithCredentialsFile(cfg.DriveCredentials))
		if err != nil {
			return nil, err
		}
		return pub, nil
	case config.PublishS3:
		pub, err := service.NewS3Publisher(ctx, service.S3Config{
			Endpoint:      cfg.S3Endpoint,
			Region:        cfg.S3Region,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		return pub, nil
	default:
		return nil, nil
	}
}

// Router builds the HTTP surface used by serve mode
func (a *App) Router() *gin.Engine {
	controllers := &router.Controllers{
		Catalog:     controller.NewCatalogController(a.Catalog, a.Reports.WithImageBase(router.ImagesPath)),
		Transaction: controller.NewTransactionController(a.Transactions, a.Reports.WithImageBase(router.ImagesPath)),
	}
	return router.NewRouter(controllers, a.Config.ImagesDir())
}

// Close releases the database connection when one was opened
func (a *App) Close() {
	if !a.usesDB {
		return
	}
	if err := db.CloseDB(); err != nil {
		logger.Warn("⚠️  Failed to close database", zap.Error(err))
	}
	a.usesDB = false
}
