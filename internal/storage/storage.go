package storage

import (
	"context"
	"fmt"

	"github.com/saransh1220/filevault/internal/config"
	"github.com/saransh1220/filevault/internal/domain"
)

// New selects a blob store implementation from configuration: S3/MinIO when
// UseS3 is set, the local filesystem otherwise.
func New(ctx context.Context, cfg config.StorageConfig) (domain.BlobStore, error) {
	if cfg.UseS3 {
		store, err := NewS3Storage(ctx, S3Config{
			BucketName: cfg.S3BucketName,
			Region:     cfg.S3Region,
			Endpoint:   cfg.S3Endpoint,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			UseSSL:     cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		return store, nil
	}

	store, err := NewLocalStorage(cfg.LocalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}
	return store, nil
}
