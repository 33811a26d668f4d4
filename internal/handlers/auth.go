package handlers

import (
	"cosec/internal/logger"
	"cosec/internal/services/auth"
	"cosec/internal/utils/response"
	"cosec/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
	log         *logger.Logger
}

func NewAuthHandler(authService auth.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: orNop(log)}
}

// Login exchanges the admin email and password for a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Required("email", input.Email)
	v.Required("password", input.Password)
	if err := v.Err(); err != nil {
		return writeError(c, h.log, err)
	}

	token, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return response.Success(c, "Login successful", token)
}
