package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/saransh1220/filevault/internal/domain"
)

// LocalStorage implements domain.BlobStore on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local filesystem blob store. Creating the
// storage root is the only initialization side effect.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Write stores data under a freshly generated path and returns it. The UUID
// prefix makes the path unique, so O_EXCL can never trip on a legitimate
// write; if it does, something else owns the file and we must not touch it.
func (l *LocalStorage) Write(ctx context.Context, name string, data []byte) (string, error) {
	fullPath := filepath.Join(l.basePath, fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(name)))

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create blob: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return fullPath, nil
}

// WriteDerived stores data at path+suffix, replacing any previous derived
// blob there. Only the worker writes derived paths and regeneration is
// deterministic, so overwriting is safe.
func (l *LocalStorage) WriteDerived(ctx context.Context, path, suffix string, data []byte) error {
	if err := os.WriteFile(path+suffix, data, 0644); err != nil {
		return fmt.Errorf("failed to write derived blob: %w", err)
	}
	return nil
}

func (l *LocalStorage) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	return data, nil
}
