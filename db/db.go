package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"otc-randomizer/logger"
)

// DB holds the database connection
var DB *sql.DB

// schema backs the catalog and transaction history repositories.
// position keeps the archive order; line keeps the pick order of a basket.
const schema = `
CREATE TABLE IF NOT EXISTS catalog_items (
	category   TEXT           NOT NULL,
	sku        TEXT           NOT NULL,
	name       TEXT           NOT NULL,
	price      NUMERIC(12, 2) NOT NULL,
	taxable    BOOLEAN        NOT NULL DEFAULT FALSE,
	full_price NUMERIC(12, 2) NOT NULL,
	position   INTEGER        NOT NULL,
	PRIMARY KEY (category, sku)
);
CREATE UNIQUE INDEX IF NOT EXISTS catalog_items_sku_idx ON catalog_items (sku);

CREATE TABLE IF NOT EXISTS transactions (
	id         UUID        PRIMARY KEY,
	category   TEXT        NOT NULL,
	target     NUMERIC     NOT NULL,
	remainder  NUMERIC     NOT NULL,
	attempts   INTEGER     NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS transactions_created_at_idx ON transactions (created_at DESC);

CREATE TABLE IF NOT EXISTS transaction_items (
	transaction_id UUID           NOT NULL REFERENCES transactions (id) ON DELETE CASCADE,
	line           INTEGER        NOT NULL,
	sku            TEXT           NOT NULL,
	name           TEXT           NOT NULL,
	price          NUMERIC(12, 2) NOT NULL,
	taxable        BOOLEAN        NOT NULL DEFAULT FALSE,
	full_price     NUMERIC(12, 2) NOT NULL,
	PRIMARY KEY (transaction_id, line)
);
`

// InitDB opens the connection described by connStr and pings it
func InitDB(ctx context.Context, connStr string) error {
	if connStr == "" {
		return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	var err error
	DB, err = sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("✓ Database connection established successfully")
	return nil
}

// EnsureSchema creates the catalog and history tables when they do not exist
func EnsureSchema(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	if _, err := DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	logger.Debug("✓ Schema ready", zap.Strings("tables", []string{"catalog_items", "transactions", "transaction_items"}))
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
