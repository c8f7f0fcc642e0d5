package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mantelbuddy/mantelbuddy-api/internal/application/usecases"
	"github.com/mantelbuddy/mantelbuddy-api/internal/utils"
)

// BalanstestHandler serves the web channel of the balanstest and the monthly
// check-in.
type BalanstestHandler struct {
	balans    usecases.BalanstestUseCase
	checkin   usecases.CheckinUseCase
	validator *utils.CustomValidator
}

func NewBalanstestHandler(balans usecases.BalanstestUseCase, checkin usecases.CheckinUseCase, v *utils.CustomValidator) *BalanstestHandler {
	return &BalanstestHandler{balans: balans, checkin: checkin, validator: v}
}

type balanstestRequest struct {
	CaregiverID string `json:"caregiver_id"`
	Phone       string `json:"phone" validate:"omitempty,dutch_phone"`
	usecases.BalanstestSubmission
}

// Submit scores and stores a balanstest. The caregiver is identified by id
// (web, known profile) or by phone (first contact creates one).
func (h *BalanstestHandler) Submit(c *fiber.Ctx) error {
	var req balanstestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	var (
		rapport *usecases.Rapport
		err     error
	)
	switch {
	case req.CaregiverID != "":
		id, parseErr := uuid.Parse(req.CaregiverID)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldig caregiver_id"})
		}
		rapport, err = h.balans.Submit(id, req.BalanstestSubmission)
	case req.Phone != "":
		rapport, err = h.balans.SubmitByPhone(req.Phone, req.BalanstestSubmission)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "caregiver_id of phone is verplicht"})
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(rapport)
}

// Laatste returns the rebuilt rapport of the most recent balanstest.
func (h *BalanstestHandler) Laatste(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "caregiverID")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rapport, err := h.balans.Laatste(id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(rapport)
}

// Trend returns the score history, oldest first.
func (h *BalanstestHandler) Trend(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "caregiverID")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	points, err := h.balans.Trend(id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"data": points, "total": len(points)})
}

type checkinRequest struct {
	CaregiverID string `json:"caregiver_id" validate:"required,uuid"`
	usecases.BalanstestSubmission
}

// SubmitCheckin stores a monthly check-in and returns the delta against the
// previous one.
func (h *BalanstestHandler) SubmitCheckin(c *fiber.Ctx) error {
	var req checkinRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldige request body"})
	}
	if err := h.validator.Validate(req); err != nil {
		return writeValidationError(c, h.validator, err)
	}

	id, err := uuid.Parse(req.CaregiverID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ongeldig caregiver_id"})
	}

	result, err := h.checkin.Submit(id, req.BalanstestSubmission)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}
