package storage

import "context"

// StorageService defines the interface for media storage operations.
type StorageService interface {
	UploadPhoto(ctx context.Context, localFilePath, folder string) (string, error)
	DeletePhoto(ctx context.Context, publicID string) error
}
