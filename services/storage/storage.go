package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client    *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a Cloudinary-backed storage service.
func NewStorageService(client *cloudinary.Cloudinary, cloudName string) *CloudinaryStorageService {
	return &CloudinaryStorageService{client: client, cloudName: cloudName}
}

// UploadPhoto uploads the file at localFilePath into the given folder and
// returns the delivery URL.
func (s *CloudinaryStorageService) UploadPhoto(ctx context.Context, localFilePath, folder string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned an empty URL for %s", localFilePath)
	}
	return resp.SecureURL, nil
}

// DeletePhoto removes an uploaded asset by its public ID.
func (s *CloudinaryStorageService) DeletePhoto(ctx context.Context, publicID string) error {
	_, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", publicID, err)
	}
	return nil
}
