// Package config provides runtime configuration values for both programs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"otc-randomizer/logger"
	"otc-randomizer/pricing"
	"otc-randomizer/randomizer"
)

// Catalog storage backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Report publish targets
const (
	PublishNone  = ""
	PublishDrive = "drive"
	PublishS3    = "s3"
)

// defaultMaxTransactionTotal bounds one randomized transaction
var defaultMaxTransactionTotal = decimal.NewFromInt(10000)

// DefaultBarcodeAPIURL returns a Code 128 PNG when the SKU is appended
const DefaultBarcodeAPIURL = "https://barcodeapi.org/api/code128/"

// Config holds every knob read from the environment.
type Config struct {
	Env      string
	LogLevel string
	DataDir  string

	CatalogBackend string
	DatabaseURL    string

	TaxRate decimal.Decimal

	BarcodeAPIURL      string
	BarcodeTimeout     time.Duration
	BarcodeConcurrency int
	BarcodeRatePerSec  float64
	BarcodeMaxRetries  int
	BarcodeWidth       int

	// RandomizerSeed is nil when draws should come from the global source
	RandomizerSeed            *uint64
	RandomizerMaxAttempts     int
	RandomizerMinimum         decimal.Decimal
	RandomizerAcceptRemainder decimal.Decimal
	MaxTransactionTotal       decimal.Decimal

	ReportPDF  bool
	ChromePath string

	PublishTarget    string
	DriveCredentials string
	DriveFolderID    string
	S3Endpoint       string
	S3Region         string
	S3AccessKey      string
	S3SecretKey      string
	S3Bucket         string
	S3PublicBaseURL  string

	HTTPAddr string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func floatenv(key string, def float64) float64 {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func decenv(key string, def decimal.Decimal) decimal.Decimal {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return def
	}
	return d
}

func durenvms(key string, defMs int) time.Duration {
	ms := atoienv(key, defMs)
	return time.Duration(ms) * time.Millisecond
}

func seedenv(key string) *uint64 {
	v := getenv(key, "")
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// LoadDotEnv loads .env outside production. Values in the file override the
// process environment.
func LoadDotEnv(path string) {
	if os.Getenv("ENV") == logger.ProdEnvironment {
		return
	}
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Overload(path); err != nil {
		logger.Debug(fmt.Sprintf("⚠️  .env file not found at %s, using system environment variables", path))
		return
	}
	logger.Debug(fmt.Sprintf("✓ Loaded environment variables from %s", path))
}

// DatabaseURL returns DATABASE_URL or a DSN assembled from the DB_* variables.
// It is empty when neither is configured.
func DatabaseURL() string {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	dbname := os.Getenv("DB_NAME")
	if host == "" || user == "" || dbname == "" {
		return ""
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, getenv("DB_PORT", "5432"), user, os.Getenv("DB_PASSWORD"), dbname, getenv("DB_SSLMODE", "disable"))
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		Env:      getenv("ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),
		DataDir:  getenv("DATA_DIR", "."),

		CatalogBackend: strings.ToLower(getenv("CATALOG_BACKEND", BackendFile)),
		DatabaseURL:    DatabaseURL(),

		TaxRate: decenv("TAX_RATE", pricing.DefaultTaxRate),

		BarcodeAPIURL:      getenv("BARCODE_API_URL", DefaultBarcodeAPIURL),
		BarcodeTimeout:     durenvms("BARCODE_TIMEOUT_MS", 1000),
		BarcodeConcurrency: atoienv("BARCODE_CONCURRENCY", 4),
		BarcodeRatePerSec:  floatenv("BARCODE_RATE_PER_SEC", 5),
		BarcodeMaxRetries:  atoienv("BARCODE_MAX_RETRIES", 3),
		BarcodeWidth:       atoienv("BARCODE_WIDTH", 0),

		RandomizerSeed:            seedenv("RANDOMIZER_SEED"),
		RandomizerMaxAttempts:     atoienv("RANDOMIZER_MAX_ATTEMPTS", randomizer.DefaultMaxAttempts),
		RandomizerMinimum:         decenv("RANDOMIZER_MINIMUM", randomizer.DefaultMinimumThreshold),
		RandomizerAcceptRemainder: decenv("RANDOMIZER_ACCEPT_REMAINDER", randomizer.DefaultAcceptRemainder),
		MaxTransactionTotal:       decenv("MAX_TRANSACTION_TOTAL", defaultMaxTransactionTotal),

		ReportPDF:  boolenv("REPORT_PDF", false),
		ChromePath: getenv("CHROME_PATH", ""),

		PublishTarget:    strings.ToLower(getenv("PUBLISH_TARGET", PublishNone)),
		DriveCredentials: getenv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		DriveFolderID:    getenv("DRIVE_FOLDER_ID", ""),
		S3Endpoint:       getenv("S3_ENDPOINT", ""),
		S3Region:         getenv("S3_REGION", "auto"),
		S3AccessKey:      getenv("S3_ACCESS_KEY", ""),
		S3SecretKey:      getenv("S3_SECRET_KEY", ""),
		S3Bucket:         getenv("S3_BUCKET", ""),
		S3PublicBaseURL:  strings.TrimRight(getenv("S3_PUBLIC_BASE_URL", ""), "/"),

		HTTPAddr: httpAddr(),
	}
}

// httpAddr prefers HTTP_ADDR, then PORT (with or without a leading colon)
func httpAddr() string {
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		return addr
	}
	port := strings.TrimPrefix(getenv("PORT", "8080"), ":")
	return "0.0.0.0:" + port
}

// Validate reports settings that cannot work together
func (c Config) Validate() error {
	switch c.CatalogBackend {
	case BackendFile:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}
	default:
		return fmt.Errorf("unknown CATALOG_BACKEND %q", c.CatalogBackend)
	}

	switch c.PublishTarget {
	case PublishNone:
	case PublishDrive:
		if c.DriveCredentials == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
		}
		if c.DriveFolderID == "" {
			return fmt.Errorf("DRIVE_FOLDER_ID environment variable is not set")
		}
	case PublishS3:
		if c.S3Bucket == "" || c.S3AccessKey == "" || c.S3SecretKey == "" {
			return fmt.Errorf("S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY must be set to publish to s3")
		}
	default:
		return fmt.Errorf("unknown PUBLISH_TARGET %q", c.PublishTarget)
	}

	if !c.MaxTransactionTotal.IsPositive() {
		return fmt.Errorf("MAX_TRANSACTION_TOTAL must be positive, got %s", c.MaxTransactionTotal)
	}
	if !c.TaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("TAX_RATE must be at least 1, got %s", c.TaxRate)
	}
	return nil
}

// ArchiveDir is where the per-category JSON catalogs live
func (c Config) ArchiveDir() string {
	return filepath.Join(c.DataDir, "itemArchive")
}

// ImagesDir is the root of the per-category barcode images
func (c Config) ImagesDir() string {
	return filepath.Join(c.DataDir, "images")
}

// HistoryPath is the transaction history file used by the file backend
func (c Config) HistoryPath() string {
	return filepath.Join(c.DataDir, "transactions.jsonl")
}
