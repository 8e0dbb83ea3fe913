package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"networth/internal/amqp"
	"networth/internal/config"
	"networth/internal/export"
	applog "networth/internal/log"
	"networth/internal/storage"
	"networth/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Level:     slog.LevelInfo,
		Component: "networth-worker",
	})
	applog.SetDefault(logger)

	logger.Info("Starting networth-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sheets export is optional. Without it the worker only maintains
	// snapshots.
	var exporter worker.EntryExporter
	if cfg.SpreadsheetID != "" {
		sheets, err := export.NewSheetsClient(ctx, cfg.SpreadsheetID, cfg.SheetName, cfg.ServiceAccountJSON, cfg.ServiceAccountFile)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		exporter = sheets
		logger.Info("Google Sheets export enabled", "spreadsheet_id", cfg.SpreadsheetID, "sheet", cfg.SheetName)
	} else {
		logger.Info("Google Sheets export disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	snapshotWorker := worker.NewSnapshotWorker(repo, exporter)

	// Bring the snapshot up to date before consuming so a restart after
	// downtime does not wait for the first tick.
	if err := snapshotWorker.Refresh(ctx); err != nil {
		logger.Error("Startup snapshot refresh failed", "error", err)
	}

	logger.Info("Worker started", "queue", cfg.AMQPQueue, "refresh_interval", cfg.SnapshotInterval)
	if err := snapshotWorker.Run(ctx, amqpClient, cfg.SnapshotInterval); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker stopped gracefully")
}
