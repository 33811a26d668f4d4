// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"strings"

	"cosec/internal/logger"
	"cosec/internal/models"
	"cosec/internal/utils"
	"cosec/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TokenParser validates a bearer token. Implemented by auth.Service.
type TokenParser interface {
	ParseToken(token string) (*models.AdminClaims, error)
}

// AuthMiddleware handles JWT token validation for admin routes.
type AuthMiddleware struct {
	tokens TokenParser
	log    *logger.Logger
}

func NewAuthMiddleware(tokens TokenParser, log *logger.Logger) *AuthMiddleware {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthMiddleware{tokens: tokens, log: log}
}

// Handler validates the Bearer token and stores the claims in the request
// context. It checks for:
//   - Presence of Authorization header with Bearer token
//   - Valid HMAC signature and expiry
//   - Admin role
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return response.Error(c, fiber.StatusUnauthorized, "missing authorization header")
	}

	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || strings.TrimSpace(tokenString) == "" {
		return response.Error(c, fiber.StatusUnauthorized, "invalid authorization format")
	}

	claims, err := m.tokens.ParseToken(strings.TrimSpace(tokenString))
	if err != nil {
		m.log.Debug("token validation failed", "error", err, "path", c.Path())
		return response.Error(c, fiber.StatusUnauthorized, "invalid token")
	}

	if !claims.IsAdmin() {
		m.log.Warn("access denied", "email", claims.Email, "role", claims.Role, "path", c.Path())
		return response.Forbidden(c)
	}

	c.Locals(utils.ClaimsKey, claims)
	return c.Next()
}
