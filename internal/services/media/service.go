// Package media relays listing images to the remote asset store.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"cosec/internal/logger"
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Asset is a stored image.
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type Service interface {
	Upload(ctx context.Context, filename string, body io.Reader) (*Asset, error)
	Delete(ctx context.Context, publicID string) error
	Enabled() bool
}

type service struct {
	storage  Storage
	folder   string
	maxBytes int64
	log      *logger.Logger
}

// NewService wraps storage. A nil storage yields a service whose operations
// return ErrStorageNotConfigured.
func NewService(storage Storage, folder string, maxBytes int64, log *logger.Logger) Service {
	if log == nil {
		log = logger.Nop()
	}
	return &service{
		storage:  storage,
		folder:   strings.Trim(folder, "/"),
		maxBytes: maxBytes,
		log:      log,
	}
}

func (s *service) Enabled() bool {
	return s.storage != nil
}

// Upload buffers at most maxBytes, sniffs the content type from the bytes
// themselves and forwards accepted images.
func (s *service) Upload(ctx context.Context, filename string, body io.Reader) (*Asset, error) {
	if !s.Enabled() {
		return nil, ErrStorageNotConfigured
	}

	data, err := io.ReadAll(io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrMediaTooLarge
	}

	contentType := http.DetectContentType(data)
	if !allowedTypes[contentType] {
		s.log.Debug("rejected upload", "filename", filename, "content_type", contentType)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, contentType)
	}

	asset, err := s.storage.Upload(ctx, bytes.NewReader(data), s.folder)
	if err != nil {
		return nil, err
	}
	s.log.Info("media uploaded", "public_id", asset.PublicID, "bytes", len(data), "content_type", contentType)
	return asset, nil
}

func (s *service) Delete(ctx context.Context, publicID string) error {
	if !s.Enabled() {
		return ErrStorageNotConfigured
	}

	publicID = strings.Trim(publicID, "/")
	if s.folder != "" && !strings.HasPrefix(publicID, s.folder+"/") {
		return ErrOutsideFolder
	}
	if err := s.storage.Destroy(ctx, publicID); err != nil {
		return err
	}
	s.log.Info("media deleted", "public_id", publicID)
	return nil
}
