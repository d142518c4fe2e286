// Command manage is the interactive catalog manager: item registration, updates,
// deletion, catalog refresh with barcode sync and master list generation.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"otc-randomizer/app"
	"otc-randomizer/cli"
	"otc-randomizer/config"
	"otc-randomizer/logger"
)

func main() {
	envPath := flag.String("env", ".env", "path to the .env file, ignored when ENV=production")
	flag.Parse()

	config.LoadDotEnv(*envPath)
	// keep log lines out of the way of the prompts unless asked for
	if os.Getenv("LOG_LEVEL") == "" {
		_ = os.Setenv("LOG_LEVEL", "warn")
	}
	cfg := config.Load()
	logger.InitLogger(cfg.Env)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.Initialize(ctx, cfg)
	if err != nil {
		logger.Error("❌ Failed to start", zap.Error(err))
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	cli.ExitOnInterrupt(os.Stdout, func() {
		cancel()
		a.Close()
		logger.Sync()
	})

	m := &manager{
		p:         cli.NewPrompter(os.Stdin, os.Stdout),
		catalog:   a.Catalog,
		barcodes:  a.Barcodes,
		reports:   a.Reports,
		publisher: a.Publisher,
	}

	if err := m.run(ctx); err != nil && !errors.Is(err, cli.ErrQuit) {
		logger.Error("❌ Catalog manager stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		a.Close()
		logger.Sync()
		os.Exit(1)
	}
	fmt.Println(cli.QuitMessage)
}
