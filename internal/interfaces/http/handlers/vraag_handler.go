package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/domain/entities"
	"github.com/mantelbuddy/mantelbuddy-api/internal/infrastructure/database"
)

// VraagHandler serves the question and care-task catalogs.
type VraagHandler struct {
	vragen usecases.VraagUseCase
	db     *gorm.DB
}

func NewVraagHandler(vragen usecases.VraagUseCase, db *gorm.DB) *VraagHandler {
	return &VraagHandler{vragen: vragen, db: db}
}

// GetVragen returns the question catalog for one questionnaire type,
// defaulting to the balanstest.
func (h *VraagHandler) GetVragen(c *fiber.Ctx) error {
	qType := entities.QuestionnaireType(c.Query("type", string(entities.QuestionnaireBalanstest)))
	if qType != entities.QuestionnaireBalanstest && qType != entities.QuestionnaireCheckin {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "onbekend vragenlijsttype: " + string(qType),
		})
	}

	vragen, err := h.vragen.GetVragen(qType)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"data": vragen, "total": len(vragen)})
}

// GetZorgtaken returns the care-task catalog.
func (h *VraagHandler) GetZorgtaken(c *fiber.Ctx) error {
	taken, err := h.vragen.GetZorgtaken()
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"data": taken, "total": len(taken)})
}

// Seed re-runs the catalog seeding and drops the catalog cache. Admin only.
func (h *VraagHandler) Seed(c *fiber.Ctx) error {
	if err := database.SeedCatalogs(h.db); err != nil {
		return writeError(c, err)
	}
	h.vragen.InvalidateCache()

	return c.JSON(fiber.Map{"status": "ok"})
}
