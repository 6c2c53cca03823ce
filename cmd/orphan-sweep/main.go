package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vehicle-maintenance-backend/internal/config"
	"vehicle-maintenance-backend/internal/database"
	"vehicle-maintenance-backend/internal/repository"
	"vehicle-maintenance-backend/internal/service"
	"vehicle-maintenance-backend/internal/storage"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// orphan-sweep removes stored invoice files that no invoice row references.
// Files younger than ORPHAN_GRACE_PERIOD are left alone so in-flight uploads survive.
func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	failed := run(ctx, cfg)
	stop()
	if failed {
		os.Exit(1)
	}
}

// run performs one sweep and reports whether anything went wrong.
func run(ctx context.Context, cfg *config.Config) bool {
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipMigrate: true, MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize database")
		return true
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize file storage")
		return true
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	invoiceService := service.NewInvoiceService(
		repository.NewInvoiceRepository(db),
		repository.NewMaintenanceRepository(db),
		repository.NewMaintenanceItemRepository(db),
		store,
		service.NewValidator(),
		cfg.InvoiceMaxBytes(),
	)

	logger := logrus.WithFields(logrus.Fields{
		"storage":      store.Driver(),
		"grace_period": cfg.OrphanGracePeriod.String(),
	})
	logger.Info("Sweeping orphaned invoice files")

	result, err := invoiceService.SweepOrphans(ctx, cfg.OrphanGracePeriod)
	if err != nil {
		logger.WithError(err).Error("Orphan sweep failed")
		return true
	}

	logger.WithFields(logrus.Fields{
		"scanned":    result.Scanned,
		"candidates": result.Candidates,
		"removed":    len(result.Removed),
		"failed":     len(result.Failed),
	}).Info("Orphan sweep finished")

	if len(result.Failed) > 0 {
		logger.WithField("paths", result.Failed).Warn("Some orphaned files could not be removed")
		return true
	}
	return false
}
