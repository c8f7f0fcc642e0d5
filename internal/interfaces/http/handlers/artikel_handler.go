package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// ArtikelHandler serves the public article list and the admin CRUD.
type ArtikelHandler struct {
	artikelen usecases.ArtikelUseCase
	validator *utils.CustomValidator
}

func NewArtikelHandler(artikelen usecases.ArtikelUseCase, v *utils.CustomValidator) *ArtikelHandler {
	return &ArtikelHandler{artikelen: artikelen, validator: v}
}

func (h *ArtikelHandler) GetAll(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	artikelen, total, err := h.artikelen.GetAll(page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":  artikelen,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *ArtikelHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	artikel, err := h.artikelen.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(artikel)
}

type artikelRequest struct {
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug" validate:"required"`
	Summary  string `json:"summary"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category"`
	IsActive *bool  `json:"is_active"`
}

func (h *ArtikelHandler) Create(c *fiber.Ctx) error {
	return h.save(c, uuid.Nil)
}

func (h *ArtikelHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return h.save(c, id)
}

func (h *ArtikelHandler) save(c *fiber.Ctx, id uuid.UUID) error {
	var req artikelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	artikel := &entities.Article{
		ID:          id,
		Title:       req.Title,
		Slug:        req.Slug,
		Summary:     req.Summary,
		Body:        req.Body,
		Category:    req.Category,
		IsActive:    boolOr(req.IsActive, true),
		PublishedAt: time.Now(),
	}
	if err := h.artikelen.Save(artikel); err != nil {
		return writeError(c, err)
	}

	status := fiber.StatusOK
	if id == uuid.Nil {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(artikel)
}

func (h *ArtikelHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.artikelen.Delete(id); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
