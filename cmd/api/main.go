package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spinwheel-cart-demo/internal/client"
	"spinwheel-cart-demo/internal/config"
	"spinwheel-cart-demo/internal/repository"
	"spinwheel-cart-demo/internal/server"
	"spinwheel-cart-demo/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db := client.InitSqliteClient(cfg.DatabaseURL)

	productRepo := repository.NewProductRepository(db)
	prizeRepo := repository.NewPrizeRepository(db)

	ctx := context.Background()
	if err := productRepo.Seed(ctx); err != nil {
		logger.Fatal("seed products", zap.Error(err))
	}
	if err := prizeRepo.Seed(ctx); err != nil {
		logger.Fatal("seed prizes", zap.Error(err))
	}

	// A malformed wheel is a configuration error; refuse to start.
	table, err := prizeRepo.GetTable(ctx)
	if err != nil {
		logger.Fatal("load prize table", zap.Error(err))
	}

	promoService, err := service.NewPromoService(logger, table, productRepo, cfg.Wheel.SpinDurationMS)
	if err != nil {
		logger.Fatal("init promo service", zap.Error(err))
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(promoService)

	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}

func newLogger(cfg config.Log) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Format != "json" {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
