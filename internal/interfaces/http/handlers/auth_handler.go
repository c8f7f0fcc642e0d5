package handlers

import (
	"crypto/subtle"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mantelbuddy/mantelbuddy-api/internal/interfaces/http/middleware"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AuthHandler issues JWTs for the admin and gemeente screens against a shared
// secret from the environment.
type AuthHandler struct {
	validator *utils.CustomValidator
}

func NewAuthHandler(v *utils.CustomValidator) *AuthHandler {
	return &AuthHandler{validator: v}
}

type tokenRequest struct {
	Secret       string `json:"secret" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=admin gemeente"`
	Municipality string `json:"municipality" validate:"required_if=Role gemeente"`
}

// Token exchanges the shared secret for a signed JWT. A missing server-side
// secret is a config error and answers 503, never a silently open door.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	expected := os.Getenv("ADMIN_API_SECRET")
	if expected == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "ADMIN_API_SECRET is niet geconfigureerd",
		})
	}
	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(expected)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "ongeldige secret"})
	}

	token, err := middleware.SignToken(req.Role, req.Municipality, tokenTTL)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"token":      token,
		"expires_in": int(tokenTTL.Seconds()),
	})
}
