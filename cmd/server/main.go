package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohanvyas/form-extractor-api/internal/analyzer"
	"github.com/rohanvyas/form-extractor-api/internal/config"
	"github.com/rohanvyas/form-extractor-api/internal/db"
	"github.com/rohanvyas/form-extractor-api/internal/repository"
	"github.com/rohanvyas/form-extractor-api/internal/router"
	"github.com/rohanvyas/form-extractor-api/internal/services"
	"github.com/rohanvyas/form-extractor-api/internal/storage"
	"github.com/rohanvyas/form-extractor-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize database
	database, err := db.NewSQLiteDB(cfg.DatabaseFile)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer database.Close()

	// Run migrations
	if err := db.RunMigrations(database); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Upload archive is optional; the demo runs without it
	var archive storage.Storage
	if cfg.S3Endpoint != "" {
		archive, err = storage.NewS3Storage(cfg)
		if err != nil {
			logger.Fatal("Failed to initialize S3 storage", "error", err)
		}
	} else {
		logger.Info("Upload archiving disabled, no S3 endpoint configured")
	}

	// Wire services
	gemini := analyzer.NewGeminiAnalyzer(cfg.GoogleAPIKey, cfg.GeminiModel, logger)
	metadataRepo := repository.NewMetadataRepository(database)
	extractionService := services.NewExtractionService(gemini, archive, logger)
	metadataService := services.NewMetadataService(metadataRepo, logger)

	// Setup HTTP router
	handler := router.NewRouter(extractionService, metadataService, metadataRepo, logger)

	// Create HTTP server; generous write timeout, the extraction
	// endpoints block on the model call
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "model", cfg.GeminiModel)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
