package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores uploaded driver's license files.
type StorageService interface {
	// UploadDriversLicense stores a base64-encoded file for a booking and
	// returns the permanent identifier of the stored asset.
	UploadDriversLicense(ctx context.Context, bookingID, contentType, base64Content string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService constructs the service from credentials.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// UploadDriversLicense uploads the file as a data URI into the
// drivers_licenses folder, keyed by booking so re-uploads replace the
// previous file.
func (s *CloudinaryStorageService) UploadDriversLicense(ctx context.Context, bookingID, contentType, base64Content string) (string, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64Content)

	result, err := s.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{
		Folder:   "drivers_licenses",
		PublicID: "license_" + bookingID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload driver's license: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned for driver's license upload")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a stored file given its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete file %s: %w", publicID, err)
	}
	return nil
}
