package handlers

import (
	"net/url"

	"cosec/internal/logger"
	"cosec/internal/services/media"
	"cosec/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type MediaHandler struct {
	service  media.Service
	maxBytes int64
	log      *logger.Logger
}

func NewMediaHandler(service media.Service, maxBytes int64, log *logger.Logger) *MediaHandler {
	return &MediaHandler{service: service, maxBytes: maxBytes, log: orNop(log)}
}

// Upload accepts a multipart "file" field.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	if !h.service.Enabled() {
		return writeError(c, h.log, media.ErrStorageNotConfigured)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "file not provided")
	}
	if fh.Size > h.maxBytes {
		return writeError(c, h.log, media.ErrMediaTooLarge)
	}

	file, err := fh.Open()
	if err != nil {
		return writeError(c, h.log, err)
	}
	defer file.Close()

	asset, err := h.service.Upload(c.UserContext(), fh.Filename, file)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Created(c, "File uploaded", asset)
}

// Delete removes an asset. The public ID may contain slashes.
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	publicID, err := url.PathUnescape(c.Params("*"))
	if err != nil || publicID == "" {
		return response.BadRequest(c, "Invalid public ID")
	}

	if err := h.service.Delete(c.UserContext(), publicID); err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "File deleted", nil)
}
