package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"content-repository/config"
	_ "content-repository/docs" // Swagger docs
	"content-repository/internal/httpserver"
	"content-repository/internal/middleware"
	pageDelivery "content-repository/internal/page/delivery/http"
	"content-repository/internal/page/repository/memory"
	"content-repository/internal/page/usecase"
	"content-repository/pkg/clock"
	"content-repository/pkg/log"
)

// @title       Content Repository API
// @description Hierarchical content tree with breadcrumb, tag search, and recency queries.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Content Repository...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	clk := clock.Real{}

	// 3. Page domain: store, seed, usecase, delivery
	store := memory.New(logger)
	if cfg.Site.SeedPath != "" {
		seed, seedErr := memory.LoadSeedFile(cfg.Site.SeedPath)
		if seedErr != nil {
			logger.Warnf(ctx, "Site seed not loaded (starting empty): %v", seedErr)
		} else if seedErr = store.Seed(ctx, seed, clk.Now()); seedErr != nil {
			logger.Error(ctx, "Failed to seed site: ", seedErr)
			return
		} else {
			logger.Infof(ctx, "Site seeded from %s", cfg.Site.SeedPath)
		}
	}

	pageUC := usecase.New(store, logger, clk)
	pageHandler := pageDelivery.New(logger, pageUC)

	// 4. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		PageHandler: pageHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
