package storage

import (
	"context"
	"fmt"

	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/internal/domain/service"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// StorageType represents the type of storage backend
type StorageType string

const (
	// StorageTypeFilesystem represents local filesystem storage
	StorageTypeFilesystem StorageType = "filesystem"

	// StorageTypeS3 represents AWS S3 storage
	StorageTypeS3 StorageType = "s3"
)

// Factory creates storage backends based on configuration
type Factory struct {
	config *config.StorageConfig
	log    *logger.Logger
}

// NewFactory creates a new storage factory
func NewFactory(cfg *config.StorageConfig) *Factory {
	return &Factory{
		config: cfg,
		log:    logger.Get().WithFields(logger.Component("storage")),
	}
}

// Create creates a new storage backend based on the configuration.
// When the S3 backend cannot be reached and fallback is enabled, uploads
// degrade to the local filesystem instead of failing startup.
func (f *Factory) Create(ctx context.Context) (service.StorageService, error) {
	switch StorageType(f.config.Type) {
	case StorageTypeFilesystem, "":
		return NewFilesystemStorage(f.config.BasePath)

	case StorageTypeS3:
		s3Store, err := NewS3Storage(ctx, S3Config{
			Bucket:    f.config.S3Bucket,
			Region:    f.config.S3Region,
			AccessKey: f.config.S3AccessKey,
			SecretKey: f.config.S3SecretKey,
			Endpoint:  f.config.S3Endpoint,
		})
		if err != nil {
			if f.config.FallbackToFilesystem {
				f.log.Warn("S3 storage unavailable, falling back to filesystem",
					logger.Error(err),
					logger.String("bucket", f.config.S3Bucket),
					logger.String("base_path", f.config.BasePath),
				)
				return NewFilesystemStorage(f.config.BasePath)
			}
			return nil, fmt.Errorf("failed to create S3 storage: %w", err)
		}
		return s3Store, nil

	default:
		return nil, fmt.Errorf("unsupported storage type: %s", f.config.Type)
	}
}
