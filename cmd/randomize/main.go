// Command randomize builds a random transaction report from a catalog. With
// -serve it exposes the catalogs and the randomizer over HTTP instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"otc-randomizer/app"
	"otc-randomizer/cli"
	"otc-randomizer/config"
	"otc-randomizer/logger"
)

func main() {
	var (
		envPath  = flag.String("env", ".env", "path to the .env file, ignored when ENV=production")
		serve    = flag.Bool("serve", false, "start the HTTP server instead of prompting")
		category = flag.String("category", "", "food or otc; with -total skips the prompts")
		total    = flag.String("total", "", "transaction total; with -category skips the prompts")
	)
	flag.Parse()

	config.LoadDotEnv(*envPath)
	if !*serve && os.Getenv("LOG_LEVEL") == "" {
		_ = os.Setenv("LOG_LEVEL", "warn")
	}
	cfg := config.Load()
	logger.InitLogger(cfg.Env)
	defer logger.Sync()

	if *serve {
		if err := runServer(cfg); err != nil {
			logger.Error("❌ Server failed", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.Initialize(ctx, cfg)
	if err != nil {
		logger.Error("❌ Failed to start", zap.Error(err))
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	p := cli.NewPrompter(os.Stdin, os.Stdout)
	if *category != "" || *total != "" {
		if err := runOnce(ctx, p, a.Transactions, *category, *total); err != nil {
			fmt.Fprintf(os.Stderr, "  %v\n", err)
			a.Close()
			logger.Sync()
			os.Exit(1)
		}
		return
	}

	cli.ExitOnInterrupt(os.Stdout, func() {
		cancel()
		a.Close()
		logger.Sync()
	})

	s := &session{p: p, transactions: a.Transactions}
	err = s.run(ctx)
	if errors.Is(err, cli.ErrQuit) {
		fmt.Println(cli.QuitMessage)
		return
	}
	if err != nil {
		logger.Error("❌ Randomizer failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "  Failed to build and write html file: %v\n", err)
		a.Close()
		logger.Sync()
		os.Exit(1)
	}
}

// runServer serves the HTTP surface until SIGINT or SIGTERM
func runServer(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Env == logger.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 Server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("🛑 Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
