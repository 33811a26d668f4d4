package media

import (
	"context"
	"fmt"
	"io"

	"cosec/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Storage is the remote asset store.
type Storage interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage returns nil, nil when Cloudinary credentials are absent
// so callers can run without media uploads.
func NewCloudinaryStorage(cfg config.CloudinaryConfig) (Storage, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &cloudinaryStorage{cld: cld}, nil
}

func (s *cloudinaryStorage) Upload(ctx context.Context, file io.Reader, folder string) (*Asset, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("cloudinary upload: no public ID returned")
	}
	return &Asset{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

func (s *cloudinaryStorage) Destroy(ctx context.Context, publicID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", result.Error.Message)
	}
	if result.Result == "not found" {
		return ErrAssetNotFound
	}
	return nil
}
