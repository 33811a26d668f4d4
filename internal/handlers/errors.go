package handlers

import (
	"errors"

	"cosec/internal/logger"
	"cosec/internal/services/auth"
	"cosec/internal/services/feetier"
	"cosec/internal/services/media"
	"cosec/internal/services/specialist"
	"cosec/internal/utils/response"
	"cosec/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// writeError maps service errors to HTTP responses. Unknown errors are logged
// and reported as 500 without detail.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return response.ValidationError(c, verr.Fields)
	case errors.Is(err, feetier.ErrTierNotFound),
		errors.Is(err, specialist.ErrSpecialistNotFound),
		errors.Is(err, media.ErrAssetNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, feetier.ErrEmptySeed),
		errors.Is(err, media.ErrEmptyFile),
		errors.Is(err, media.ErrOutsideFolder):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return response.Error(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, media.ErrUnsupportedMedia):
		return response.Error(c, fiber.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, media.ErrMediaTooLarge):
		return response.Error(c, fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, media.ErrStorageNotConfigured):
		return response.ServiceUnavailable(c, err.Error())
	}

	log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return response.ServerError(c, "internal server error")
}

func parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func orNop(log *logger.Logger) *logger.Logger {
	if log == nil {
		return logger.Nop()
	}
	return log
}
