package media

import "errors"

var (
	ErrUnsupportedMedia     = errors.New("unsupported media type")
	ErrMediaTooLarge        = errors.New("file exceeds the upload size limit")
	ErrEmptyFile            = errors.New("file is empty")
	ErrStorageNotConfigured = errors.New("media storage not configured")
	ErrOutsideFolder        = errors.New("asset does not belong to the listing media folder")
	ErrAssetNotFound        = errors.New("asset not found")
)
