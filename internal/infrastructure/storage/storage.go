package storage

import (
	"context"
	"fmt"

	"portfolio/internal/domain/repositories"
	appconfig "portfolio/internal/pkg/config"
	consts "portfolio/pkg/constants"
)

// New picks the storage strategy from STORAGE_DRIVER.
func New(ctx context.Context, cfg appconfig.StorageConfig, uploadsDir string) (repositories.StorageStrategy, error) {
	switch cfg.Driver {
	case "local", "":
		return NewLocalStorage(uploadsDir, consts.UploadsURLPrefix), nil
	case "s3":
		return NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region)
	}
	return nil, fmt.Errorf("bilinmeyen STORAGE_DRIVER: %q", cfg.Driver)
}
