package storage

import (
	"context"
	"fmt"

	"vehicle-maintenance-backend/internal/config"
)

// New builds the file store selected by STORAGE_DRIVER
func New(ctx context.Context, cfg *config.Config) (FileStore, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return NewLocalStore(cfg.StorageRoot)
	case "memory":
		return NewMemoryStore(), nil
	case "gcs":
		return NewGCSStore(ctx, cfg.GCSBucket, cfg.StorageEmulatorHost)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
