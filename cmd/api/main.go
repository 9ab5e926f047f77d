package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/01moynul/locify-golang/internal/config"
	"github.com/01moynul/locify-golang/internal/database"
	"github.com/01moynul/locify-golang/internal/handlers"
	"github.com/01moynul/locify-golang/internal/logger"
	"github.com/01moynul/locify-golang/internal/marketplace"
	"github.com/01moynul/locify-golang/internal/repository"
	"github.com/01moynul/locify-golang/internal/routes"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 0. --- Load Configuration (.env + environment) ---
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatalf("CRITICAL ERROR: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 1. --- Logger ---
	logr, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logr.Sync()
	if !envLoaded {
		logr.Warn("Could not find or load .env file. Relying on system environment variables.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. --- Database Connection & Schema ---
	db, err := database.OpenDB(ctx, cfg.DSN)
	if err != nil {
		logr.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logr.Info("Database connection pool established")

	if err := database.Migrate(ctx, db); err != nil {
		logr.Fatal("Failed to migrate database", zap.Error(err))
	}

	// 3. --- Marketplace Service ---
	opts := []marketplace.Option{marketplace.WithFeedLimit(cfg.FeedLimit)}
	if cfg.FeedPlaceholders {
		opts = append(opts, marketplace.WithPlaceholders(marketplace.NewPlaceholders(uint64(time.Now().UnixNano()))))
	}
	market := marketplace.NewService(
		repository.NewRequestRepository(db),
		repository.NewResponseRepository(db),
		repository.NewStoreRepository(db),
		repository.NewNotificationRepository(db),
		opts...,
	)

	// --- Application Setup ---
	app := &handlers.Handlers{
		Market:    market,
		Log:       logr,
		UploadDir: cfg.UploadDir,
		BaseURL:   cfg.BaseURL,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, routes.Options{
		JWTSecret:  []byte(cfg.JWTSecret),
		CORSOrigin: cfg.CORSOrigin,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("Starting Locify API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("Graceful shutdown failed", zap.Error(err))
	}
}
