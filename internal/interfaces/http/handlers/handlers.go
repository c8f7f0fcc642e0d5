package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// writeError maps use-case errors onto a JSON error response. Lookup misses
// are a 404, municipality scope violations a 403, everything else a 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecases.ErrNietGevonden):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "niet gevonden"})
	case errors.Is(err, usecases.ErrGemeenteMismatch):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// writeValidationError flattens validator errors into a field->message map.
func writeValidationError(c *fiber.Ctx, v *utils.CustomValidator, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "validatie mislukt",
		"fields": v.ValidationErrors(err),
	})
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errors.New("ongeldige " + name)
	}
	return id, nil
}

func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
