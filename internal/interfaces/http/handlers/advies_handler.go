package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// AdviesHandler is the admin CRUD for advisory texts.
type AdviesHandler struct {
	advies    usecases.AdviesUseCase
	validator *utils.CustomValidator
}

func NewAdviesHandler(advies usecases.AdviesUseCase, v *utils.CustomValidator) *AdviesHandler {
	return &AdviesHandler{advies: advies, validator: v}
}

func (h *AdviesHandler) GetAll(c *fiber.Ctx) error {
	adviezen, err := h.advies.GetAll()
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"data": adviezen, "total": len(adviezen)})
}

type adviesRequest struct {
	Key  string `json:"key" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// Save upserts an advisory text by key.
func (h *AdviesHandler) Save(c *fiber.Ctx) error {
	var req adviesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	advice := &entities.Advice{Key: req.Key, Text: req.Text}
	if err := h.advies.Save(advice); err != nil {
		return writeError(c, err)
	}

	return c.JSON(advice)
}

func (h *AdviesHandler) Delete(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is verplicht"})
	}

	if err := h.advies.Delete(key); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
